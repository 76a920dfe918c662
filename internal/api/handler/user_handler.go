package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/api/middleware"
	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// UserHandler user account endpoints.
type UserHandler struct {
	userSvc *service.UserService
	logger  *zap.Logger
}

// NewUserHandler creates the user handler.
func NewUserHandler(userSvc *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userSvc: userSvc, logger: logger}
}

// Me GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userSvc.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToUserResponse(user))
}

// UpdateMe PUT /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία προφίλ.")
		return
	}

	user, err := h.userSvc.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Το προφίλ ενημερώθηκε.", dto.ToUserResponse(user))
}

// Get GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.ToUserResponse(user))
}

// Update PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρα στοιχεία χρήστη.")
		return
	}

	user, err := h.userSvc.AdminUpdate(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Ο χρήστης ενημερώθηκε.", dto.ToUserResponse(user))
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρες παράμετροι αναζήτησης.")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &q)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OKPage(c, "", dto.ToUserResponses(users), total, q.Page, q.PageSize)
}

// Delete DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Ο χρήστης διαγράφηκε.", nil)
}

// parseID reads the :id path parameter, writing a 400 on failure.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρο αναγνωριστικό.")
		return 0, false
	}
	return uint(id), true
}
