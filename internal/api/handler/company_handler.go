package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// CompanyHandler host company endpoints.
type CompanyHandler struct {
	companySvc *service.CompanyService
	logger     *zap.Logger
}

// NewCompanyHandler creates the company handler.
func NewCompanyHandler(companySvc *service.CompanyService, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc, logger: logger}
}

// Create POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία εταιρείας.")
		return
	}

	company, err := h.companySvc.Create(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, "Η εταιρεία καταχωρήθηκε.", dto.ToCompanyResponse(company))
}

// Get GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	company, err := h.companySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToCompanyResponse(company))
}

// Update PUT /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία εταιρείας.")
		return
	}

	company, err := h.companySvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η εταιρεία ενημερώθηκε.", dto.ToCompanyResponse(company))
}

// Delete DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.companySvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η εταιρεία διαγράφηκε.", nil)
}

// List GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	var q dto.ListCompaniesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρες παράμετροι αναζήτησης.")
		return
	}

	companies, total, err := h.companySvc.List(c.Request.Context(), &q)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, "", dto.ToCompanyResponses(companies), total, q.Page, q.PageSize)
}
