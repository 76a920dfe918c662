package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/api/middleware"
	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// InternshipHandler placement lifecycle endpoints.
type InternshipHandler struct {
	internshipSvc *service.InternshipService
	exportSvc     *service.ExportService
	logger        *zap.Logger
}

// NewInternshipHandler creates the internship handler.
func NewInternshipHandler(internshipSvc *service.InternshipService, exportSvc *service.ExportService, logger *zap.Logger) *InternshipHandler {
	return &InternshipHandler{internshipSvc: internshipSvc, exportSvc: exportSvc, logger: logger}
}

// Upsert POST /internships
func (h *InternshipHandler) Upsert(c *gin.Context) {
	var req dto.UpsertInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία πρακτικής άσκησης.")
		return
	}

	internship, err := h.internshipSvc.CreateOrUpdate(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η πρακτική άσκηση αποθηκεύτηκε.", dto.ToInternshipResponse(internship))
}

// Mine GET /internships/me
func (h *InternshipHandler) Mine(c *gin.Context) {
	internship, err := h.internshipSvc.GetByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToInternshipResponse(internship))
}

// Get GET /internships/:id
func (h *InternshipHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	internship, err := h.internshipSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToInternshipResponse(internship))
}

// UpdateStatus PUT /internships/:id/status
func (h *InternshipHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρη κατάσταση.")
		return
	}

	internship, err := h.internshipSvc.UpdateStatus(
		c.Request.Context(), middleware.UserID(c), middleware.IsAdministrative(c), id, req.Status)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η κατάσταση ενημερώθηκε.", dto.ToInternshipResponse(internship))
}

// Update PUT /internships/:id
func (h *InternshipHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpsertInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία πρακτικής άσκησης.")
		return
	}

	internship, err := h.internshipSvc.AdminUpdate(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η πρακτική άσκηση ενημερώθηκε.", dto.ToInternshipResponse(internship))
}

// Delete DELETE /internships/:id
func (h *InternshipHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.internshipSvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Η πρακτική άσκηση διαγράφηκε.", nil)
}

// List GET /internships
func (h *InternshipHandler) List(c *gin.Context) {
	var q dto.ListInternshipsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρες παράμετροι αναζήτησης.")
		return
	}

	internships, total, err := h.internshipSvc.List(c.Request.Context(), &q)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, "", dto.ToInternshipResponses(internships), total, q.Page, q.PageSize)
}

// Export GET /internships/export?program=...
func (h *InternshipHandler) Export(c *gin.Context) {
	program := model.InternshipProgram(c.Query("program"))

	fileName := fmt.Sprintf("praktikes_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := h.exportSvc.WriteInternships(c.Request.Context(), program, c.Writer); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
}
