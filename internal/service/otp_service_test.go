package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/sms"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret-at-least-16-chars",
			SessionTokenTTL:    time.Hour,
			CapabilityTokenTTL: time.Hour,
		},
		OTP: config.OTPConfig{
			TTL:           30 * time.Minute,
			SweepInterval: time.Hour,
		},
		SMS: config.SMSConfig{Enabled: false},
	}
}

func newTestOTPService(internships *mockInternshipRepo, companies *mockCompanyRepo, otps *mockOTPRepo) *OTPService {
	cfg := testConfig()
	logger := zap.NewNop()
	if companies == nil {
		companies = newMockCompanyRepo()
	}
	return NewOTPService(
		cfg,
		otps,
		internships,
		companies,
		jwt.NewManager(&cfg.Auth),
		sms.NewSender(&cfg.SMS, logger),
		logger,
	)
}

// hostedInternship seeds a company and an active internship placed with it.
func hostedInternship(t *testing.T, userID uint) (*mockInternshipRepo, *mockCompanyRepo) {
	t.Helper()
	companies := newMockCompanyRepo()
	company := &model.Company{Name: "Εταιρεία ΑΕ", AFM: "123456789"}
	if err := companies.Create(context.Background(), company); err != nil {
		t.Fatal(err)
	}
	internships := newMockInternshipRepo()
	if err := internships.Create(context.Background(), &model.Internship{
		UserID:    userID,
		Program:   model.ProgramEspa,
		Status:    model.StatusActive,
		CompanyID: &company.ID,
	}); err != nil {
		t.Fatal(err)
	}
	return internships, companies
}

func TestGenerateRequiresInternship(t *testing.T) {
	svc := newTestOTPService(newMockInternshipRepo(), nil, newMockOTPRepo())

	_, err := svc.Generate(context.Background(), 1)
	if !errors.Is(err, ErrInternshipNotFound) {
		t.Fatalf("Generate() error = %v, want ErrInternshipNotFound", err)
	}
}

func TestGenerateIsIdempotentWhileValid(t *testing.T) {
	internships := newMockInternshipRepo()
	internships.Create(context.Background(), &model.Internship{
		UserID:  1,
		Program: model.ProgramEspa,
		Status:  model.StatusActive,
	})
	svc := newTestOTPService(internships, nil, newMockOTPRepo())

	first, err := svc.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(first.Code) != 6 {
		t.Errorf("code length = %d, want 6", len(first.Code))
	}

	second, err := svc.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() second call error = %v", err)
	}
	if second.Code != first.Code {
		t.Errorf("second Generate() returned new code %s, want %s", second.Code, first.Code)
	}
}

func TestGenerateReplacesExpiredCode(t *testing.T) {
	internships := newMockInternshipRepo()
	internships.Create(context.Background(), &model.Internship{
		UserID:  1,
		Program: model.ProgramEspa,
		Status:  model.StatusActive,
	})
	otps := newMockOTPRepo()
	otps.Create(context.Background(), &model.OTP{
		UserID:     1,
		Code:       "111111",
		ExpiryDate: time.Now().Add(-time.Minute),
	})
	svc := newTestOTPService(internships, nil, otps)

	otp, err := svc.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if otp.Code == "111111" {
		t.Error("expired code was returned instead of replaced")
	}
	if otp.Expired(time.Now()) {
		t.Error("new code is already expired")
	}
}

func TestValidateConsumesCode(t *testing.T) {
	internships, companies := hostedInternship(t, 7)
	otps := newMockOTPRepo()
	otps.Create(context.Background(), &model.OTP{
		UserID:     7,
		Code:       "123456",
		ExpiryDate: time.Now().Add(10 * time.Minute),
	})
	svc := newTestOTPService(internships, companies, otps)

	result, err := svc.Validate(context.Background(), "123456")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if result.Internship.UserID != 7 {
		t.Errorf("internship user = %d, want 7", result.Internship.UserID)
	}
	if result.Company == nil || result.Company.Name != "Εταιρεία ΑΕ" {
		t.Errorf("company = %v, want the hosting company", result.Company)
	}
	if result.Token == "" {
		t.Error("no capability token returned")
	}

	// Second use must fail; the code was consumed.
	if _, err := svc.Validate(context.Background(), "123456"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("second Validate() error = %v, want ErrInvalidOTP", err)
	}
}

func TestValidateRequiresInternship(t *testing.T) {
	otps := newMockOTPRepo()
	otps.Create(context.Background(), &model.OTP{
		UserID:     7,
		Code:       "123456",
		ExpiryDate: time.Now().Add(10 * time.Minute),
	})
	svc := newTestOTPService(newMockInternshipRepo(), nil, otps)

	if _, err := svc.Validate(context.Background(), "123456"); !errors.Is(err, ErrInternshipNotFound) {
		t.Fatalf("Validate() error = %v, want ErrInternshipNotFound", err)
	}
}

func TestValidateRequiresHostCompany(t *testing.T) {
	internships := newMockInternshipRepo()
	internships.Create(context.Background(), &model.Internship{
		UserID:  7,
		Program: model.ProgramEspa,
		Status:  model.StatusActive,
	})
	otps := newMockOTPRepo()
	otps.Create(context.Background(), &model.OTP{
		UserID:     7,
		Code:       "123456",
		ExpiryDate: time.Now().Add(10 * time.Minute),
	})
	svc := newTestOTPService(internships, nil, otps)

	if _, err := svc.Validate(context.Background(), "123456"); !errors.Is(err, ErrInternshipNoCompany) {
		t.Fatalf("Validate() error = %v, want ErrInternshipNoCompany", err)
	}

	// The failed validation must not burn the code.
	if _, err := otps.GetByCode(context.Background(), "123456"); err != nil {
		t.Error("code was consumed by a failed validation")
	}
}

func TestValidateExpiredAndUnknownLookTheSame(t *testing.T) {
	otps := newMockOTPRepo()
	otps.Create(context.Background(), &model.OTP{
		UserID:     1,
		Code:       "222222",
		ExpiryDate: time.Now().Add(-time.Minute),
	})
	svc := newTestOTPService(newMockInternshipRepo(), nil, otps)

	_, errExpired := svc.Validate(context.Background(), "222222")
	_, errUnknown := svc.Validate(context.Background(), "999999")

	if !errors.Is(errExpired, ErrInvalidOTP) {
		t.Errorf("expired code error = %v, want ErrInvalidOTP", errExpired)
	}
	if !errors.Is(errUnknown, ErrInvalidOTP) {
		t.Errorf("unknown code error = %v, want ErrInvalidOTP", errUnknown)
	}
	if errExpired.Error() != errUnknown.Error() {
		t.Error("expired and unknown codes produce distinguishable errors")
	}
}

func TestCleanupExpired(t *testing.T) {
	otps := newMockOTPRepo()
	otps.Create(context.Background(), &model.OTP{UserID: 1, Code: "111111", ExpiryDate: time.Now().Add(-time.Hour)})
	otps.Create(context.Background(), &model.OTP{UserID: 2, Code: "222222", ExpiryDate: time.Now().Add(time.Hour)})
	svc := newTestOTPService(newMockInternshipRepo(), nil, otps)

	n, err := svc.CleanupExpired(context.Background())
	if err != nil {
		t.Fatalf("CleanupExpired() error = %v", err)
	}
	if n != 1 {
		t.Errorf("removed %d codes, want 1", n)
	}
	if _, err := otps.GetByUserID(context.Background(), 2); err != nil {
		t.Error("valid code was swept")
	}
}
