package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
)

// CompanyRepository data access for host companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	GetByID(ctx context.Context, id uint) (*model.Company, error)
	GetByAFM(ctx context.Context, afm string) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q *dto.ListCompaniesQuery) ([]model.Company, int64, error)
}

type gormCompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a GORM-backed company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &gormCompanyRepository{db: db}
}

func (r *gormCompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *gormCompanyRepository) GetByID(ctx context.Context, id uint) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *gormCompanyRepository) GetByAFM(ctx context.Context, afm string) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("afm = ?", afm).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *gormCompanyRepository) Update(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *gormCompanyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Company{}, id).Error
}

func (r *gormCompanyRepository) List(ctx context.Context, q *dto.ListCompaniesQuery) ([]model.Company, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Company{})

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where("name ILIKE ? OR afm LIKE ?", pattern, pattern)
	}
	if q.City != "" {
		query = query.Where("city ILIKE ?", q.City)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var companies []model.Company
	offset := (q.Page - 1) * q.PageSize
	if err := query.Order("name").
		Offset(offset).Limit(q.PageSize).
		Find(&companies).Error; err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}
