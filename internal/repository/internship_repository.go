package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
)

// InternshipRepository data access for internships.
type InternshipRepository interface {
	Create(ctx context.Context, internship *model.Internship) error
	GetByID(ctx context.Context, id uint) (*model.Internship, error)
	GetByUserID(ctx context.Context, userID uint) (*model.Internship, error)
	Update(ctx context.Context, internship *model.Internship) error
	// DeleteCascade removes the internship together with the student's
	// documents, pending OTP, and questionnaire answers in one transaction.
	DeleteCascade(ctx context.Context, internship *model.Internship) error
	List(ctx context.Context, q *dto.ListInternshipsQuery) ([]model.Internship, int64, error)
	// ListAll returns internships without pagination, optionally restricted
	// to one program and one status. Empty values mean no filter.
	ListAll(ctx context.Context, program model.InternshipProgram, status model.InternshipStatus) ([]model.Internship, error)
}

type gormInternshipRepository struct {
	db *gorm.DB
}

// NewInternshipRepository creates a GORM-backed internship repository.
func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &gormInternshipRepository{db: db}
}

func (r *gormInternshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	return r.db.WithContext(ctx).Create(internship).Error
}

func (r *gormInternshipRepository) GetByID(ctx context.Context, id uint) (*model.Internship, error) {
	var internship model.Internship
	if err := r.db.WithContext(ctx).
		Preload("User").Preload("Company").
		First(&internship, id).Error; err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *gormInternshipRepository) GetByUserID(ctx context.Context, userID uint) (*model.Internship, error) {
	var internship model.Internship
	if err := r.db.WithContext(ctx).
		Preload("User").Preload("Company").
		Where("user_id = ?", userID).
		First(&internship).Error; err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *gormInternshipRepository) Update(ctx context.Context, internship *model.Internship) error {
	return r.db.WithContext(ctx).Save(internship).Error
}

func (r *gormInternshipRepository) DeleteCascade(ctx context.Context, internship *model.Internship) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userID := internship.UserID
		if err := tx.Where("user_id = ?", userID).Delete(&model.Dikaiologitiko{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.OTP{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("internship_id = ?", internship.ID).Delete(&model.CompanyAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Internship{}, internship.ID).Error
	})
}

func (r *gormInternshipRepository) List(ctx context.Context, q *dto.ListInternshipsQuery) ([]model.Internship, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Internship{})

	if q.Program != "" {
		query = query.Where("program = ?", q.Program)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Department != "" {
		query = query.Where("department = ?", q.Department)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Joins("JOIN users ON users.id = internships.user_id").
			Where("users.first_name ILIKE ? OR users.last_name ILIKE ? OR users.am ILIKE ?",
				pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var internships []model.Internship
	offset := (q.Page - 1) * q.PageSize
	if err := query.Preload("User").Preload("Company").
		Order("internships.created_at DESC").
		Offset(offset).Limit(q.PageSize).
		Find(&internships).Error; err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}

func (r *gormInternshipRepository) ListAll(ctx context.Context, program model.InternshipProgram, status model.InternshipStatus) ([]model.Internship, error) {
	query := r.db.WithContext(ctx).Preload("User").Preload("Company")
	if program != "" {
		query = query.Where("program = ?", program)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var internships []model.Internship
	if err := query.Order("created_at").Find(&internships).Error; err != nil {
		return nil, err
	}
	return internships, nil
}
