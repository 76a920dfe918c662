package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/api/middleware"
	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// AnswerHandler questionnaire submission endpoints.
type AnswerHandler struct {
	answerSvc *service.AnswerService
	logger    *zap.Logger
}

// NewAnswerHandler creates the answer handler.
func NewAnswerHandler(answerSvc *service.AnswerService, logger *zap.Logger) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc, logger: logger}
}

// SubmitStudent POST /answers/student
func (h *AnswerHandler) SubmitStudent(c *gin.Context) {
	var req dto.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρες απαντήσεις.")
		return
	}

	if err := h.answerSvc.SubmitStudent(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Το ερωτηματολόγιο υποβλήθηκε.", nil)
}

// SubmitCompany POST /answers/company (capability token)
func (h *AnswerHandler) SubmitCompany(c *gin.Context) {
	var req dto.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρες απαντήσεις.")
		return
	}

	if err := h.answerSvc.SubmitCompany(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Το ερωτηματολόγιο υποβλήθηκε.", nil)
}

// MyAnswers GET /answers/student/me
func (h *AnswerHandler) MyAnswers(c *gin.Context) {
	answers, err := h.answerSvc.GetStudentAnswers(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToUserAnswerResponses(answers))
}

// StudentAnswers GET /users/:id/answers/student
func (h *AnswerHandler) StudentAnswers(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	answers, err := h.answerSvc.GetStudentAnswers(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToUserAnswerResponses(answers))
}

// CompanyAnswers GET /users/:id/answers/company
func (h *AnswerHandler) CompanyAnswers(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	answers, err := h.answerSvc.GetCompanyAnswers(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToCompanyAnswerResponses(answers))
}
