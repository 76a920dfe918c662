package dto

import (
	"time"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// DikaiologitikoResponse document fields exposed over the API.
type DikaiologitikoResponse struct {
	ID              uint                  `json:"id"`
	UserID          uint                  `json:"user_id"`
	Type            model.DocumentType    `json:"type"`
	TypeDescription string                `json:"type_description"`
	FileName        string                `json:"file_name"`
	SubmissionPhase model.SubmissionPhase `json:"submission_phase"`
	SubmissionTime  time.Time             `json:"submission_time"`
}

// ToDikaiologitikoResponse converts a document model.
func ToDikaiologitikoResponse(d *model.Dikaiologitiko) DikaiologitikoResponse {
	return DikaiologitikoResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		Type:            d.Type,
		TypeDescription: d.Type.Description(),
		FileName:        d.FileName,
		SubmissionPhase: d.Phase,
		SubmissionTime:  d.SubmissionTime,
	}
}

// ToDikaiologitikoResponses converts a slice of document models.
func ToDikaiologitikoResponses(docs []model.Dikaiologitiko) []DikaiologitikoResponse {
	out := make([]DikaiologitikoResponse, len(docs))
	for i := range docs {
		out[i] = ToDikaiologitikoResponse(&docs[i])
	}
	return out
}

// DocumentRequirement one entry of a program's document checklist.
type DocumentRequirement struct {
	Type            model.DocumentType    `json:"type"`
	Description     string                `json:"description"`
	SubmissionPhase model.SubmissionPhase `json:"submission_phase"`
}

// DocumentProgress reports submitted versus required documents for a phase.
type DocumentProgress struct {
	Phase     model.SubmissionPhase    `json:"phase"`
	Required  []model.DocumentType     `json:"required"`
	Submitted []DikaiologitikoResponse `json:"submitted"`
	Missing   []model.DocumentType     `json:"missing"`
	Complete  bool                     `json:"complete"`
}
