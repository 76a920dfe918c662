package service

import (
	"fmt"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// MissingDocumentsError reports how far a phase's document set is from
// complete, listing the types still missing.
type MissingDocumentsError struct {
	Phase     model.SubmissionPhase
	Submitted int
	Required  int
	Missing   []model.DocumentType
}

func (e *MissingDocumentsError) Error() string {
	return fmt.Sprintf("%d/%d required documents submitted for phase %s",
		e.Submitted, e.Required, e.Phase)
}

// InvalidOptionIDsError reports answer options that do not belong to the
// question they were submitted for.
type InvalidOptionIDsError struct {
	QuestionID uint
	OptionIDs  []uint
}

func (e *InvalidOptionIDsError) Error() string {
	return fmt.Sprintf("invalid answer options %v for question %d", e.OptionIDs, e.QuestionID)
}
