package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// QuestionRepository data access for questionnaire questions and options.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	GetByID(ctx context.Context, id uint) (*model.Question, error)
	ListByQuestionnaire(ctx context.Context, qt model.QuestionnaireType) ([]model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	// ReplaceOptions swaps the full option set of a question in one transaction.
	ReplaceOptions(ctx context.Context, questionID uint, options []model.AnswerOption) error
	Delete(ctx context.Context, id uint) error
}

type gormQuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a GORM-backed question repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &gormQuestionRepository{db: db}
}

func (r *gormQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *gormQuestionRepository) GetByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).
		Preload("AnswerOptions").
		First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *gormQuestionRepository) ListByQuestionnaire(ctx context.Context, qt model.QuestionnaireType) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).
		Preload("AnswerOptions").
		Where("questionnaire_type = ?", qt).
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *gormQuestionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("AnswerOptions").Save(question).Error
}

func (r *gormQuestionRepository) ReplaceOptions(ctx context.Context, questionID uint, options []model.AnswerOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		for i := range options {
			options[i].QuestionID = questionID
		}
		return tx.Create(&options).Error
	})
}

func (r *gormQuestionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&model.AnswerOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, id).Error
	})
}
