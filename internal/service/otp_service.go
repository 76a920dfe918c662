package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/repository"
	"github.com/michaeltheo/placements-backend/internal/sms"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
)

var (
	// ErrInvalidOTP covers both unknown and expired codes so a caller cannot
	// distinguish the two.
	ErrInvalidOTP = errors.New("μη έγκυρος ή ληγμένος κωδικός μίας χρήσης")
	// ErrInternshipNoCompany rejects validation while the internship has no
	// host company on record.
	ErrInternshipNoCompany = errors.New("δεν έχει οριστεί εταιρεία για την πρακτική άσκηση")
)

// OTPValidation is what a company receives for a valid code: the capability
// token plus the internship the questionnaire concerns.
type OTPValidation struct {
	Internship *model.Internship
	Company    *model.Company
	Token      string
	ExpiresAt  time.Time
}

// OTPService manages the one-time codes that gate the company questionnaire.
type OTPService struct {
	cfg            *config.Config
	otpRepo        repository.OTPRepository
	internshipRepo repository.InternshipRepository
	companyRepo    repository.CompanyRepository
	jwt            *jwt.Manager
	sender         *sms.Sender
	logger         *zap.Logger
}

// NewOTPService creates the OTP service.
func NewOTPService(
	cfg *config.Config,
	otpRepo repository.OTPRepository,
	internshipRepo repository.InternshipRepository,
	companyRepo repository.CompanyRepository,
	jwtManager *jwt.Manager,
	sender *sms.Sender,
	logger *zap.Logger,
) *OTPService {
	return &OTPService{
		cfg:            cfg,
		otpRepo:        otpRepo,
		internshipRepo: internshipRepo,
		companyRepo:    companyRepo,
		jwt:            jwtManager,
		sender:         sender,
		logger:         logger,
	}
}

// Generate returns the student's one-time code, creating one if none exists.
// A still-valid code is returned unchanged; an expired one is replaced.
func (s *OTPService) Generate(ctx context.Context, userID uint) (*model.OTP, error) {
	internship, err := s.internshipRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("getting internship: %w", err)
	}

	now := time.Now()
	otp, err := s.otpRepo.GetByUserID(ctx, userID)
	if err == nil {
		if !otp.Expired(now) {
			return otp, nil
		}
		otp.Code = randomCode()
		otp.ExpiryDate = now.Add(s.cfg.OTP.TTL)
		if err := s.otpRepo.Update(ctx, otp); err != nil {
			return nil, fmt.Errorf("refreshing otp: %w", err)
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		otp = &model.OTP{
			UserID:     userID,
			Code:       randomCode(),
			ExpiryDate: now.Add(s.cfg.OTP.TTL),
		}
		if err := s.otpRepo.Create(ctx, otp); err != nil {
			return nil, fmt.Errorf("creating otp: %w", err)
		}
	} else {
		return nil, fmt.Errorf("getting otp: %w", err)
	}

	s.notifyCompany(ctx, internship, otp)
	return otp, nil
}

// Validate checks a code, consumes it, and mints the capability token the
// company uses to submit the questionnaire. Expired codes are deleted on
// sight and treated the same as unknown ones. The student's internship and
// its host company must both be on record before the token is issued.
func (s *OTPService) Validate(ctx context.Context, code string) (*OTPValidation, error) {
	otp, err := s.otpRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOTP
		}
		return nil, fmt.Errorf("getting otp: %w", err)
	}

	if otp.Expired(time.Now()) {
		if err := s.otpRepo.Delete(ctx, otp.ID); err != nil {
			s.logger.Warn("deleting expired otp failed", zap.Error(err))
		}
		return nil, ErrInvalidOTP
	}

	internship, err := s.internshipRepo.GetByUserID(ctx, otp.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("getting internship: %w", err)
	}
	if internship.CompanyID == nil {
		return nil, ErrInternshipNoCompany
	}
	company, err := s.companyRepo.GetByID(ctx, *internship.CompanyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNoCompany
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}

	if err := s.otpRepo.Delete(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("consuming otp: %w", err)
	}

	token, err := s.jwt.GenerateCapabilityToken(otp.UserID)
	if err != nil {
		return nil, fmt.Errorf("issuing capability token: %w", err)
	}

	s.logger.Info("otp validated", zap.Uint("user_id", otp.UserID))
	return &OTPValidation{
		Internship: internship,
		Company:    company,
		Token:      token,
		ExpiresAt:  time.Now().Add(s.cfg.Auth.CapabilityTokenTTL),
	}, nil
}

// CleanupExpired deletes all expired codes.
func (s *OTPService) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.otpRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("deleting expired otps: %w", err)
	}
	if n > 0 {
		s.logger.Info("expired otps removed", zap.Int64("count", n))
	}
	return n, nil
}

// StartSweeper runs CleanupExpired on an interval until the context ends.
func (s *OTPService) StartSweeper(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.OTP.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.CleanupExpired(ctx); err != nil {
				s.logger.Error("otp sweep failed", zap.Error(err))
			}
		}
	}
}

// notifyCompany sends the code to the host company's phone. Delivery failure
// never fails the request; the student still sees the code.
func (s *OTPService) notifyCompany(ctx context.Context, internship *model.Internship, otp *model.OTP) {
	if internship.CompanyID == nil {
		return
	}
	company, err := s.companyRepo.GetByID(ctx, *internship.CompanyID)
	if err != nil || company.Telephone == "" {
		return
	}

	message := fmt.Sprintf("Κωδικός ερωτηματολογίου πρακτικής άσκησης: %s", otp.Code)
	if err := s.sender.Send(ctx, company.Telephone, message); err != nil {
		s.logger.Warn("otp sms delivery failed",
			zap.Uint("company_id", company.ID),
			zap.Error(err),
		)
	}
}

func randomCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
