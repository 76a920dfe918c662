package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// OptionCount one answer option's selection tally.
type OptionCount struct {
	AnswerOptionID uint  `gorm:"column:answer_option_id"`
	Count          int64 `gorm:"column:count"`
}

// TextCount one distinct free-text answer's tally.
type TextCount struct {
	AnswerText string `gorm:"column:answer_text"`
	Count      int64  `gorm:"column:count"`
}

// AnswerRepository data access for questionnaire answers. Student answers are
// keyed by the answering user, company answers by the internship the
// questionnaire concerns.
type AnswerRepository interface {
	// ReplaceUserAnswers deletes the student's stored rows for the given
	// questions and inserts the new rows in one transaction. Answers to
	// other questions are left untouched.
	ReplaceUserAnswers(ctx context.Context, userID uint, questionIDs []uint, rows []model.UserAnswer) error
	// ReplaceCompanyAnswers does the same for a company submission.
	ReplaceCompanyAnswers(ctx context.Context, internshipID uint, questionIDs []uint, rows []model.CompanyAnswer) error
	ListUserAnswers(ctx context.Context, userID uint) ([]model.UserAnswer, error)
	ListCompanyAnswers(ctx context.Context, internshipID uint) ([]model.CompanyAnswer, error)
	OptionCounts(ctx context.Context, qt model.QuestionnaireType, questionID uint) ([]OptionCount, error)
	TextCounts(ctx context.Context, qt model.QuestionnaireType, questionID uint) ([]TextCount, error)
	TotalAnswers(ctx context.Context, qt model.QuestionnaireType, questionID uint) (int64, error)
}

type gormAnswerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository creates a GORM-backed answer repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &gormAnswerRepository{db: db}
}

func (r *gormAnswerRepository) ReplaceUserAnswers(ctx context.Context, userID uint, questionIDs []uint, rows []model.UserAnswer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(questionIDs) > 0 {
			if err := tx.Where("user_id = ? AND question_id IN ?", userID, questionIDs).
				Delete(&model.UserAnswer{}).Error; err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *gormAnswerRepository) ReplaceCompanyAnswers(ctx context.Context, internshipID uint, questionIDs []uint, rows []model.CompanyAnswer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(questionIDs) > 0 {
			if err := tx.Where("internship_id = ? AND question_id IN ?", internshipID, questionIDs).
				Delete(&model.CompanyAnswer{}).Error; err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (r *gormAnswerRepository) ListUserAnswers(ctx context.Context, userID uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	if err := r.db.WithContext(ctx).
		Preload("Question").Preload("AnswerOption").
		Where("user_id = ?", userID).
		Order("question_id").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *gormAnswerRepository) ListCompanyAnswers(ctx context.Context, internshipID uint) ([]model.CompanyAnswer, error) {
	var answers []model.CompanyAnswer
	if err := r.db.WithContext(ctx).
		Preload("Question").Preload("AnswerOption").
		Where("internship_id = ?", internshipID).
		Order("question_id").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

// tableFor maps a questionnaire type to its answer table.
func tableFor(qt model.QuestionnaireType) string {
	if qt == model.QuestionnaireCompany {
		return "company_answers"
	}
	return "user_answers"
}

// ownerColumnFor maps a questionnaire type to the column identifying one
// submission in its answer table.
func ownerColumnFor(qt model.QuestionnaireType) string {
	if qt == model.QuestionnaireCompany {
		return "internship_id"
	}
	return "user_id"
}

func (r *gormAnswerRepository) OptionCounts(ctx context.Context, qt model.QuestionnaireType, questionID uint) ([]OptionCount, error) {
	var counts []OptionCount
	if err := r.db.WithContext(ctx).
		Table(tableFor(qt)).
		Select("answer_option_id, COUNT(*) AS count").
		Where("question_id = ? AND answer_option_id IS NOT NULL", questionID).
		Group("answer_option_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *gormAnswerRepository) TextCounts(ctx context.Context, qt model.QuestionnaireType, questionID uint) ([]TextCount, error) {
	var counts []TextCount
	if err := r.db.WithContext(ctx).
		Table(tableFor(qt)).
		Select("answer_text, COUNT(*) AS count").
		Where("question_id = ? AND answer_text IS NOT NULL AND answer_text <> ''", questionID).
		Group("answer_text").
		Order("count DESC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *gormAnswerRepository) TotalAnswers(ctx context.Context, qt model.QuestionnaireType, questionID uint) (int64, error) {
	col := ownerColumnFor(qt)
	var total int64
	if err := r.db.WithContext(ctx).
		Table(tableFor(qt)).
		Where("question_id = ?", questionID).
		Distinct(col).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
