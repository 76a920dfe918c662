package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
)

var (
	ErrQuestionNotFound     = errors.New("η ερώτηση δεν βρέθηκε")
	ErrInvalidQuestionType  = errors.New("μη έγκυρος τύπος ερώτησης")
	ErrInvalidQuestionnaire = errors.New("μη έγκυρος τύπος ερωτηματολογίου")
	ErrOptionsRequired      = errors.New("οι ερωτήσεις πολλαπλής επιλογής απαιτούν επιλογές απάντησης")
	ErrOptionsNotAllowed    = errors.New("οι ερωτήσεις ελεύθερου κειμένου δεν δέχονται επιλογές απάντησης")
)

// QuestionService manages questionnaire questions and their statistics.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	logger       *zap.Logger
}

// NewQuestionService creates the question service.
func NewQuestionService(questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository, logger *zap.Logger) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, answerRepo: answerRepo, logger: logger}
}

// Create adds a question with its option set.
func (s *QuestionService) Create(ctx context.Context, req *dto.CreateQuestionRequest) (*model.Question, error) {
	if !req.QuestionType.Valid() {
		return nil, ErrInvalidQuestionType
	}
	if !req.QuestionnaireType.Valid() {
		return nil, ErrInvalidQuestionnaire
	}
	if err := checkOptionShape(req.QuestionType, len(req.AnswerOptions)); err != nil {
		return nil, err
	}

	question := &model.Question{
		QuestionText:            req.QuestionText,
		QuestionType:            req.QuestionType,
		QuestionnaireType:       req.QuestionnaireType,
		SupportsMultipleAnswers: req.SupportsMultipleAnswers,
	}
	for _, text := range req.AnswerOptions {
		question.AnswerOptions = append(question.AnswerOptions, model.AnswerOption{OptionText: text})
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("creating question: %w", err)
	}

	s.logger.Info("question created",
		zap.Uint("question_id", question.ID),
		zap.String("questionnaire", string(question.QuestionnaireType)),
	)
	return question, nil
}

// GetByID returns a question with its options.
func (s *QuestionService) GetByID(ctx context.Context, id uint) (*model.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("getting question: %w", err)
	}
	return question, nil
}

// List returns the questions of a questionnaire.
func (s *QuestionService) List(ctx context.Context, qt model.QuestionnaireType) ([]model.Question, error) {
	if !qt.Valid() {
		return nil, ErrInvalidQuestionnaire
	}
	questions, err := s.questionRepo.ListByQuestionnaire(ctx, qt)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	return questions, nil
}

// Update edits a question's text and optionally replaces its options.
// Replacing options invalidates stored selections of the old set, so the
// option replacement cascades through the answers tables.
func (s *QuestionService) Update(ctx context.Context, id uint, req *dto.UpdateQuestionRequest) (*model.Question, error) {
	question, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AnswerOptions != nil {
		if err := checkOptionShape(question.QuestionType, len(req.AnswerOptions)); err != nil {
			return nil, err
		}
	}

	if req.QuestionText != "" || req.SupportsMultipleAnswers != nil {
		if req.QuestionText != "" {
			question.QuestionText = req.QuestionText
		}
		if req.SupportsMultipleAnswers != nil {
			question.SupportsMultipleAnswers = *req.SupportsMultipleAnswers
		}
		if err := s.questionRepo.Update(ctx, question); err != nil {
			return nil, fmt.Errorf("updating question: %w", err)
		}
	}

	if req.AnswerOptions != nil {
		options := make([]model.AnswerOption, len(req.AnswerOptions))
		for i, text := range req.AnswerOptions {
			options[i] = model.AnswerOption{OptionText: text}
		}
		if err := s.questionRepo.ReplaceOptions(ctx, id, options); err != nil {
			return nil, fmt.Errorf("replacing options: %w", err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete removes a question with its options and stored answers.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	s.logger.Info("question deleted", zap.Uint("question_id", id))
	return nil
}

// Statistics aggregates the answers of a questionnaire. Options nobody
// selected appear with a zero count; free-text answers are tallied per
// distinct text. The sentinel option's tally is the number of distinct
// texts attached to it, not the number of rows, and a choice question's
// total is the sum of its option tallies.
func (s *QuestionService) Statistics(ctx context.Context, qt model.QuestionnaireType) ([]dto.QuestionStatistics, error) {
	questions, err := s.List(ctx, qt)
	if err != nil {
		return nil, err
	}

	stats := make([]dto.QuestionStatistics, 0, len(questions))
	for i := range questions {
		q := &questions[i]

		qs := dto.QuestionStatistics{
			QuestionID:   q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
		}

		var texts []repository.TextCount
		if q.SupportsText() {
			texts, err = s.answerRepo.TextCounts(ctx, qt, q.ID)
			if err != nil {
				return nil, fmt.Errorf("counting text answers: %w", err)
			}
			for _, t := range texts {
				qs.FreeText = append(qs.FreeText, dto.TextStatistic{Text: t.AnswerText, Count: t.Count})
			}
		}

		if q.QuestionType == model.QuestionFreeText {
			total, err := s.answerRepo.TotalAnswers(ctx, qt, q.ID)
			if err != nil {
				return nil, fmt.Errorf("counting answers: %w", err)
			}
			qs.TotalAnswers = total
			stats = append(stats, qs)
			continue
		}

		counts, err := s.answerRepo.OptionCounts(ctx, qt, q.ID)
		if err != nil {
			return nil, fmt.Errorf("counting option selections: %w", err)
		}
		byOption := make(map[uint]int64, len(counts))
		for _, c := range counts {
			byOption[c.AnswerOptionID] = c.Count
		}
		for _, opt := range q.AnswerOptions {
			count := byOption[opt.ID]
			if q.QuestionType == model.QuestionMultipleChoiceWithText && opt.OptionText == model.OtherOptionText {
				count = int64(len(texts))
			}
			qs.Options = append(qs.Options, dto.OptionStatistic{
				OptionID:   opt.ID,
				OptionText: opt.OptionText,
				Count:      count,
			})
			qs.TotalAnswers += count
		}

		stats = append(stats, qs)
	}

	return stats, nil
}

// checkOptionShape enforces the option-count rules per question type.
func checkOptionShape(qt model.QuestionType, optionCount int) error {
	switch qt {
	case model.QuestionFreeText:
		if optionCount > 0 {
			return ErrOptionsNotAllowed
		}
	default:
		if optionCount == 0 {
			return ErrOptionsRequired
		}
	}
	return nil
}
