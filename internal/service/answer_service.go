package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
)

var (
	ErrDuplicateQuestion     = errors.New("η ίδια ερώτηση απαντήθηκε περισσότερες από μία φορές")
	ErrDuplicateOption       = errors.New("η ίδια επιλογή απάντησης υποβλήθηκε περισσότερες από μία φορές")
	ErrMultipleNotAllowed    = errors.New("η ερώτηση δέχεται μόνο μία επιλογή απάντησης")
	ErrTextRequired          = errors.New("η απάντηση απαιτεί κείμενο")
	ErrTextNotAllowed        = errors.New("η ερώτηση δεν δέχεται κείμενο απάντησης")
	ErrOptionRequired        = errors.New("η ερώτηση απαιτεί επιλογή απάντησης")
	ErrQuestionnaireMismatch = errors.New("η ερώτηση δεν ανήκει σε αυτό το ερωτηματολόγιο")
)

// AnswerService validates and stores questionnaire submissions.
type AnswerService struct {
	answerRepo     repository.AnswerRepository
	questionRepo   repository.QuestionRepository
	internshipRepo repository.InternshipRepository
	logger         *zap.Logger
}

// NewAnswerService creates the answer service.
func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	internshipRepo repository.InternshipRepository,
	logger *zap.Logger,
) *AnswerService {
	return &AnswerService{
		answerRepo:     answerRepo,
		questionRepo:   questionRepo,
		internshipRepo: internshipRepo,
		logger:         logger,
	}
}

// SubmitStudent stores a student's answers. Submissions may cover any subset
// of the questionnaire; each answered question replaces the student's
// previous answer to it and the rest stay as they were.
func (s *AnswerService) SubmitStudent(ctx context.Context, userID uint, req *dto.SubmitAnswersRequest) error {
	rows, questionIDs, err := s.buildRows(ctx, model.QuestionnaireStudent, req)
	if err != nil {
		return err
	}

	userRows := make([]model.UserAnswer, len(rows))
	for i, r := range rows {
		userRows[i] = model.UserAnswer{
			UserID:         userID,
			QuestionID:     r.QuestionID,
			AnswerOptionID: r.AnswerOptionID,
			AnswerText:     r.AnswerText,
		}
	}
	if err := s.answerRepo.ReplaceUserAnswers(ctx, userID, questionIDs, userRows); err != nil {
		return fmt.Errorf("storing answers: %w", err)
	}

	s.logger.Info("student questionnaire submitted",
		zap.Uint("user_id", userID),
		zap.Int("questions", len(questionIDs)),
	)
	return nil
}

// SubmitCompany stores a company's answers against the internship of the
// student identified by the capability token.
func (s *AnswerService) SubmitCompany(ctx context.Context, userID uint, req *dto.SubmitAnswersRequest) error {
	internship, err := s.internshipForUser(ctx, userID)
	if err != nil {
		return err
	}

	rows, questionIDs, err := s.buildRows(ctx, model.QuestionnaireCompany, req)
	if err != nil {
		return err
	}

	companyRows := make([]model.CompanyAnswer, len(rows))
	for i, r := range rows {
		companyRows[i] = model.CompanyAnswer{
			InternshipID:   internship.ID,
			QuestionID:     r.QuestionID,
			AnswerOptionID: r.AnswerOptionID,
			AnswerText:     r.AnswerText,
		}
	}
	if err := s.answerRepo.ReplaceCompanyAnswers(ctx, internship.ID, questionIDs, companyRows); err != nil {
		return fmt.Errorf("storing answers: %w", err)
	}

	s.logger.Info("company questionnaire submitted",
		zap.Uint("internship_id", internship.ID),
		zap.Int("questions", len(questionIDs)),
	)
	return nil
}

// GetStudentAnswers returns a student's stored answers.
func (s *AnswerService) GetStudentAnswers(ctx context.Context, userID uint) ([]model.UserAnswer, error) {
	answers, err := s.answerRepo.ListUserAnswers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	return answers, nil
}

// GetCompanyAnswers returns the company answers stored for a student's
// internship.
func (s *AnswerService) GetCompanyAnswers(ctx context.Context, userID uint) ([]model.CompanyAnswer, error) {
	internship, err := s.internshipForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answerRepo.ListCompanyAnswers(ctx, internship.ID)
	if err != nil {
		return nil, fmt.Errorf("listing answers: %w", err)
	}
	return answers, nil
}

func (s *AnswerService) internshipForUser(ctx context.Context, userID uint) (*model.Internship, error) {
	internship, err := s.internshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("getting internship: %w", err)
	}
	return internship, nil
}

// answerRow is the questionnaire-agnostic row shape before it is bound to an
// owner.
type answerRow struct {
	QuestionID     uint
	AnswerOptionID *uint
	AnswerText     *string
}

// buildRows validates a submission and expands it into storage rows. Every
// answered question must belong to the questionnaire and appear at most
// once. It also returns the answered question IDs so the caller can scope
// the replace.
func (s *AnswerService) buildRows(ctx context.Context, qt model.QuestionnaireType, req *dto.SubmitAnswersRequest) ([]answerRow, []uint, error) {
	seen := make(map[uint]bool, len(req.Answers))
	questionIDs := make([]uint, 0, len(req.Answers))
	var rows []answerRow
	for i := range req.Answers {
		in := &req.Answers[i]

		question, err := s.questionRepo.GetByID(ctx, in.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, ErrQuestionNotFound
			}
			return nil, nil, fmt.Errorf("getting question: %w", err)
		}
		if question.QuestionnaireType != qt {
			return nil, nil, ErrQuestionnaireMismatch
		}
		if seen[in.QuestionID] {
			return nil, nil, ErrDuplicateQuestion
		}
		seen[in.QuestionID] = true
		questionIDs = append(questionIDs, in.QuestionID)

		expanded, err := expandAnswer(question, in)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, expanded...)
	}

	return rows, questionIDs, nil
}

// expandAnswer turns one answer input into storage rows according to the
// question type.
func expandAnswer(question *model.Question, in *dto.AnswerInput) ([]answerRow, error) {
	text := strings.TrimSpace(in.AnswerText)

	switch question.QuestionType {
	case model.QuestionFreeText:
		if len(in.AnswerOptionIDs) > 0 {
			return nil, &InvalidOptionIDsError{QuestionID: question.ID, OptionIDs: in.AnswerOptionIDs}
		}
		if text == "" {
			return nil, ErrTextRequired
		}
		return []answerRow{{
			QuestionID: question.ID,
			AnswerText: &text,
		}}, nil

	case model.QuestionMultipleChoice, model.QuestionMultipleChoiceWithText:
		if len(in.AnswerOptionIDs) == 0 {
			return nil, ErrOptionRequired
		}
		if bad := invalidOptions(question, in.AnswerOptionIDs); len(bad) > 0 {
			return nil, &InvalidOptionIDsError{QuestionID: question.ID, OptionIDs: bad}
		}
		if hasDuplicates(in.AnswerOptionIDs) {
			return nil, ErrDuplicateOption
		}
		if !question.SupportsMultipleAnswers && len(in.AnswerOptionIDs) > 1 {
			return nil, ErrMultipleNotAllowed
		}

		otherID := otherOptionID(question)
		otherSelected := false
		if question.QuestionType == model.QuestionMultipleChoiceWithText {
			for _, id := range in.AnswerOptionIDs {
				if otherID != nil && id == *otherID {
					otherSelected = true
				}
			}
			if otherSelected && text == "" {
				return nil, ErrTextRequired
			}
		}
		if !otherSelected && text != "" {
			return nil, ErrTextNotAllowed
		}

		rows := make([]answerRow, 0, len(in.AnswerOptionIDs))
		for _, id := range in.AnswerOptionIDs {
			optionID := id
			row := answerRow{
				QuestionID:     question.ID,
				AnswerOptionID: &optionID,
			}
			// Free text rides on the sentinel option's row.
			if otherSelected && id == *otherID {
				row.AnswerText = &text
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	return nil, ErrInvalidQuestionType
}

// invalidOptions returns the submitted option IDs that do not belong to the
// question.
func invalidOptions(question *model.Question, ids []uint) []uint {
	valid := make(map[uint]bool, len(question.AnswerOptions))
	for _, opt := range question.AnswerOptions {
		valid[opt.ID] = true
	}
	var bad []uint
	for _, id := range ids {
		if !valid[id] {
			bad = append(bad, id)
		}
	}
	return bad
}

func hasDuplicates(ids []uint) bool {
	seen := make(map[uint]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

// otherOptionID finds the sentinel option of a question, if it has one.
func otherOptionID(question *model.Question) *uint {
	for _, opt := range question.AnswerOptions {
		if opt.OptionText == model.OtherOptionText {
			id := opt.ID
			return &id
		}
	}
	return nil
}
