package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/internal/api/middleware"
	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// OTPHandler one-time code endpoints.
type OTPHandler struct {
	otpSvc *service.OTPService
	logger *zap.Logger
}

// NewOTPHandler creates the OTP handler.
func NewOTPHandler(otpSvc *service.OTPService, logger *zap.Logger) *OTPHandler {
	return &OTPHandler{otpSvc: otpSvc, logger: logger}
}

// Generate POST /otp
func (h *OTPHandler) Generate(c *gin.Context) {
	otp, err := h.otpSvc.Generate(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "Ο κωδικός δημιουργήθηκε.", dto.OTPResponse{
		Code:       otp.Code,
		ExpiryDate: otp.ExpiryDate,
	})
}

// Validate POST /otp/validate
func (h *OTPHandler) Validate(c *gin.Context) {
	var req dto.ValidateOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40000, "Μη έγκυρος κωδικός.")
		return
	}

	result, err := h.otpSvc.Validate(c.Request.Context(), req.Code)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	resp := dto.ValidateOTPResponse{
		Token:        result.Token,
		UserID:       result.Internship.UserID,
		InternshipID: result.Internship.ID,
		CompanyName:  result.Company.Name,
		StartDate:    result.Internship.StartDate,
		EndDate:      result.Internship.EndDate,
		ExpiresAt:    result.ExpiresAt,
	}
	if result.Internship.User != nil {
		resp.StudentName = result.Internship.User.FullName()
	}
	response.OK(c, "Ο κωδικός επαληθεύτηκε.", resp)
}
