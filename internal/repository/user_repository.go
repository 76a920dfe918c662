package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
)

// UserRepository data access for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByAM(ctx context.Context, am string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, q *dto.ListUsersQuery) ([]model.User, int64, error)
}

type gormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) GetByAM(ctx context.Context, am string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("am = ?", am).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *gormUserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, id).Error
}

func (r *gormUserRepository) List(ctx context.Context, q *dto.ListUsersQuery) ([]model.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.User{})

	if q.Role != "" {
		query = query.Where("role = ?", q.Role)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR am ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	offset := (q.Page - 1) * q.PageSize
	if err := query.Order("last_name, first_name").
		Offset(offset).Limit(q.PageSize).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
