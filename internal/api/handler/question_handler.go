package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// QuestionHandler questionnaire management endpoints.
type QuestionHandler struct {
	questionSvc *service.QuestionService
	logger      *zap.Logger
}

// NewQuestionHandler creates the question handler.
func NewQuestionHandler(questionSvc *service.QuestionService, logger *zap.Logger) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc, logger: logger}
}

// Create POST /questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία ερώτησης.")
		return
	}

	question, err := h.questionSvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, "Η ερώτηση δημιουργήθηκε.", dto.ToQuestionResponse(question))
}

// List GET /questions?questionnaire=student|company
func (h *QuestionHandler) List(c *gin.Context) {
	qt := model.QuestionnaireType(c.Query("questionnaire"))

	questions, err := h.questionSvc.List(c.Request.Context(), qt)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToQuestionResponses(questions))
}

// Update PUT /questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία ερώτησης.")
		return
	}

	question, err := h.questionSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η ερώτηση ενημερώθηκε.", dto.ToQuestionResponse(question))
}

// Delete DELETE /questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.questionSvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η ερώτηση διαγράφηκε.", nil)
}

// Statistics GET /questions/statistics?questionnaire=student|company
func (h *QuestionHandler) Statistics(c *gin.Context) {
	qt := model.QuestionnaireType(c.Query("questionnaire"))

	stats, err := h.questionSvc.Statistics(c.Request.Context(), qt)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", stats)
}
