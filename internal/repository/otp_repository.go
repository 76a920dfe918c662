package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/internal/model"
)

// OTPRepository data access for one-time codes.
type OTPRepository interface {
	Create(ctx context.Context, otp *model.OTP) error
	GetByUserID(ctx context.Context, userID uint) (*model.OTP, error)
	GetByCode(ctx context.Context, code string) (*model.OTP, error)
	Update(ctx context.Context, otp *model.OTP) error
	Delete(ctx context.Context, id uint) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type gormOTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a GORM-backed OTP repository.
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &gormOTPRepository{db: db}
}

func (r *gormOTPRepository) Create(ctx context.Context, otp *model.OTP) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *gormOTPRepository) GetByUserID(ctx context.Context, userID uint) (*model.OTP, error) {
	var otp model.OTP
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *gormOTPRepository) GetByCode(ctx context.Context, code string) (*model.OTP, error) {
	var otp model.OTP
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *gormOTPRepository) Update(ctx context.Context, otp *model.OTP) error {
	return r.db.WithContext(ctx).Save(otp).Error
}

func (r *gormOTPRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.OTP{}, id).Error
}

func (r *gormOTPRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expiry_date < ?", now).Delete(&model.OTP{})
	return res.RowsAffected, res.Error
}
