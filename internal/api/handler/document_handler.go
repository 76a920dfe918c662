package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/api/middleware"
	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/model"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// DocumentHandler dikaiologitika endpoints.
type DocumentHandler struct {
	documentSvc *service.DocumentService
	logger      *zap.Logger
}

// NewDocumentHandler creates the document handler.
func NewDocumentHandler(documentSvc *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documentSvc: documentSvc, logger: logger}
}

// Upload POST /documents (multipart: type, file, optional submission_phase)
func (h *DocumentHandler) Upload(c *gin.Context) {
	docType := model.DocumentType(c.PostForm("type"))
	phase := model.SubmissionPhase(c.PostForm("submission_phase"))
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 40000, "Λείπει το αρχείο.")
		return
	}

	doc, err := h.documentSvc.Upload(c.Request.Context(), middleware.UserID(c), docType, phase, file)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.Created(c, "Το δικαιολογητικό υποβλήθηκε.", dto.ToDikaiologitikoResponse(doc))
}

// Replace PUT /documents/:id (multipart: file)
func (h *DocumentHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 40000, "Λείπει το αρχείο.")
		return
	}

	doc, err := h.documentSvc.Replace(c.Request.Context(), middleware.UserID(c), id, file)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Το δικαιολογητικό αντικαταστάθηκε.", dto.ToDikaiologitikoResponse(doc))
}

// Mine GET /documents/me?type=...
func (h *DocumentHandler) Mine(c *gin.Context) {
	docType := model.DocumentType(c.Query("type"))
	docs, err := h.documentSvc.ListByUser(c.Request.Context(), middleware.UserID(c), docType)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToDikaiologitikoResponses(docs))
}

// ListAll GET /documents?type=...
func (h *DocumentHandler) ListAll(c *gin.Context) {
	docType := model.DocumentType(c.Query("type"))
	docs, err := h.documentSvc.ListAll(c.Request.Context(), docType)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToDikaiologitikoResponses(docs))
}

// Requirements GET /documents/requirements?program=...
func (h *DocumentHandler) Requirements(c *gin.Context) {
	program := model.InternshipProgram(c.Query("program"))
	reqs, err := h.documentSvc.Requirements(program)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", reqs)
}

// Progress GET /documents/me/progress?phase=start|end
func (h *DocumentHandler) Progress(c *gin.Context) {
	phase := model.SubmissionPhase(c.DefaultQuery("phase", string(model.PhaseStart)))
	if phase != model.PhaseStart && phase != model.PhaseEnd {
		response.BadRequest(c, 40000, "Μη έγκυρη φάση υποβολής.")
		return
	}

	progress, err := h.documentSvc.Progress(c.Request.Context(), middleware.UserID(c), phase)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", progress)
}

// ListByUser GET /users/:id/documents?type=...
func (h *DocumentHandler) ListByUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	docType := model.DocumentType(c.Query("type"))
	docs, err := h.documentSvc.ListByUser(c.Request.Context(), id, docType)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToDikaiologitikoResponses(docs))
}

// Download GET /documents/:id/download
func (h *DocumentHandler) Download(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, file, err := h.documentSvc.Open(c.Request.Context(), middleware.UserID(c), middleware.IsAdministrative(c), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	defer file.Close()

	size := int64(0)
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.DataFromReader(http.StatusOK, size, "application/pdf", file, nil)
}

// Archive GET /users/:id/documents/archive
func (h *DocumentHandler) Archive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("dikaiologitika_%d.zip", id)))
	c.Header("Content-Type", "application/zip")

	if err := h.documentSvc.WriteArchive(c.Request.Context(), id, c.Writer); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
}

// Delete DELETE /documents/:id
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.documentSvc.Delete(c.Request.Context(), middleware.UserID(c), middleware.IsAdministrative(c), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Το δικαιολογητικό διαγράφηκε.", nil)
}
