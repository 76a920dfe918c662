package service

import (
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/repository"
	"github.com/michaeltheo/placements-backend/internal/sms"
	"github.com/michaeltheo/placements-backend/internal/sso"
	"github.com/michaeltheo/placements-backend/internal/storage"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
	"github.com/michaeltheo/placements-backend/pkg/redis"
)

// Service aggregates all business logic components.
type Service struct {
	Auth       *AuthService
	User       *UserService
	Company    *CompanyService
	Internship *InternshipService
	Document   *DocumentService
	OTP        *OTPService
	Question   *QuestionService
	Answer     *AnswerService
	Export     *ExportService
}

// New wires the service aggregate.
func New(
	cfg *config.Config,
	repo *repository.Repository,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
	ssoClient *sso.Client,
	smsSender *sms.Sender,
	store *storage.LocalStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo.User, jwtManager, redisClient, ssoClient, logger),
		User:       NewUserService(repo.User, logger),
		Company:    NewCompanyService(repo.Company, logger),
		Internship: NewInternshipService(repo.Internship, repo.Company, repo.Document, store, logger),
		Document:   NewDocumentService(repo.Document, repo.Internship, store, logger),
		OTP:        NewOTPService(cfg, repo.OTP, repo.Internship, repo.Company, jwtManager, smsSender, logger),
		Question:   NewQuestionService(repo.Question, repo.Answer, logger),
		Answer:     NewAnswerService(repo.Answer, repo.Question, repo.Internship, logger),
		Export:     NewExportService(repo.Internship, logger),
	}
}
