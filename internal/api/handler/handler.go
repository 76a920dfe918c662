package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Company    *CompanyHandler
	Internship *InternshipHandler
	Document   *DocumentHandler
	OTP        *OTPHandler
	Question   *QuestionHandler
	Answer     *AnswerHandler
}

// New wires the handler aggregate.
func New(cfg *config.Config, svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(cfg, svc.Auth, logger),
		User:       NewUserHandler(svc.User, logger),
		Company:    NewCompanyHandler(svc.Company, logger),
		Internship: NewInternshipHandler(svc.Internship, svc.Export, logger),
		Document:   NewDocumentHandler(svc.Document, logger),
		OTP:        NewOTPHandler(svc.OTP, logger),
		Question:   NewQuestionHandler(svc.Question, logger),
		Answer:     NewAnswerHandler(svc.Answer, logger),
	}
}

// notFoundErrs map to 404.
var notFoundErrs = []error{
	service.ErrUserNotFound,
	service.ErrCompanyNotFound,
	service.ErrInternshipNotFound,
	service.ErrDocumentNotFound,
	service.ErrQuestionNotFound,
}

// conflictErrs map to 409.
var conflictErrs = []error{
	service.ErrCompanyExists,
	service.ErrDocumentExists,
}

// badRequestErrs map to 400.
var badRequestErrs = []error{
	service.ErrInvalidProgram,
	service.ErrInvalidStatus,
	service.ErrProgramLocked,
	service.ErrInvalidDocumentType,
	service.ErrDocumentNotAccepted,
	service.ErrInvalidFileType,
	service.ErrInvalidPhase,
	service.ErrInvalidRole,
	service.ErrInternshipNoCompany,
	service.ErrInvalidQuestionType,
	service.ErrInvalidQuestionnaire,
	service.ErrOptionsRequired,
	service.ErrOptionsNotAllowed,
	service.ErrDuplicateQuestion,
	service.ErrDuplicateOption,
	service.ErrMultipleNotAllowed,
	service.ErrTextRequired,
	service.ErrTextNotAllowed,
	service.ErrOptionRequired,
	service.ErrQuestionnaireMismatch,
}

// forbiddenErrs map to 403.
var forbiddenErrs = []error{
	service.ErrNotDocumentOwner,
	service.ErrNotInternshipOwner,
	service.ErrStatusAdminOnly,
}

// writeServiceError translates a service error into the response envelope.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	for _, e := range notFoundErrs {
		if errors.Is(err, e) {
			response.NotFound(c, 40400, e.Error())
			return
		}
	}
	for _, e := range conflictErrs {
		if errors.Is(err, e) {
			response.Conflict(c, 40900, e.Error())
			return
		}
	}
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			response.BadRequest(c, 40000, e.Error())
			return
		}
	}

	for _, e := range forbiddenErrs {
		if errors.Is(err, e) {
			response.Forbidden(c, 40301, e.Error())
			return
		}
	}

	var missingDocs *service.MissingDocumentsError
	if errors.As(err, &missingDocs) {
		response.ErrorWithDetails(c, 400, 40002,
			"Λείπουν υποχρεωτικά δικαιολογητικά.",
			missingDocs.Error())
		return
	}
	var invalidOptions *service.InvalidOptionIDsError
	if errors.As(err, &invalidOptions) {
		response.ErrorWithDetails(c, 400, 40003,
			"Μη έγκυρες επιλογές απάντησης.",
			invalidOptions.Error())
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidOTP):
		response.Unauthorized(c, 40103, err.Error())
	case errors.Is(err, service.ErrLoginStateInvalid), errors.Is(err, service.ErrLoginFailed):
		response.Unauthorized(c, 40104, err.Error())
	default:
		logger.Error("unhandled service error", zap.Error(err))
		response.InternalError(c)
	}
}
