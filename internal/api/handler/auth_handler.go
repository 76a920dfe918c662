package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/dto"
	"github.com/michaeltheo/placements-backend/internal/service"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// AuthHandler login and session endpoints.
type AuthHandler struct {
	cfg     *config.Config
	authSvc *service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates the auth handler.
func NewAuthHandler(cfg *config.Config, authSvc *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc, logger: logger}
}

// LoginURL GET /auth/login
func (h *AuthHandler) LoginURL(c *gin.Context) {
	url, err := h.authSvc.LoginURL(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	response.OK(c, "", dto.LoginURLResponse{URL: url})
}

// Callback GET /auth/callback?code=...&state=...
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		response.BadRequest(c, 40000, "Λείπουν παράμετροι σύνδεσης.")
		return
	}

	user, token, err := h.authSvc.HandleCallback(c.Request.Context(), code, state)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}

	h.setSessionCookie(c, token)
	response.OK(c, "Επιτυχής σύνδεση.", dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: token,
	})
}

// Logout POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.OK(c, "Αποσυνδεθήκατε.", nil)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	cookie := h.cfg.Auth.Cookie
	c.SetSameSite(sameSite(cookie.SameSite))
	c.SetCookie(
		service.CookieName,
		token,
		int(h.cfg.Auth.SessionTokenTTL.Seconds()),
		"/",
		cookie.Domain,
		cookie.Secure,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	cookie := h.cfg.Auth.Cookie
	c.SetSameSite(sameSite(cookie.SameSite))
	c.SetCookie(service.CookieName, "", -1, "/", cookie.Domain, cookie.Secure, true)
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
