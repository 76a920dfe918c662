package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/michaeltheo/placements-backend/config"
	"github.com/michaeltheo/placements-backend/internal/api/handler"
	"github.com/michaeltheo/placements-backend/internal/api/middleware"
	"github.com/michaeltheo/placements-backend/pkg/jwt"
	"github.com/michaeltheo/placements-backend/pkg/redis"
	"github.com/michaeltheo/placements-backend/pkg/response"
)

// New builds the gin engine with all routes wired.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtManager *jwt.Manager,
	redisClient *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(&cfg.Server.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		response.OK(c, "ok", nil)
	})

	v1 := r.Group("/api/v1")

	sessionAuth := middleware.JWTAuth(jwtManager)
	adminAuth := middleware.AdminAuth()
	capabilityAuth := middleware.CapabilityAuth(jwtManager)

	// ── auth ──
	auth := v1.Group("/auth")
	{
		auth.GET("/login", h.Auth.LoginURL)
		auth.GET("/callback", h.Auth.Callback)
		auth.POST("/logout", sessionAuth, h.Auth.Logout)
	}

	// ── users ──
	users := v1.Group("/users", sessionAuth)
	{
		users.GET("/me", h.User.Me)
		users.PUT("/me", h.User.UpdateMe)

		users.GET("", adminAuth, h.User.List)
		users.GET("/:id", adminAuth, h.User.Get)
		users.PUT("/:id", adminAuth, h.User.Update)
		users.DELETE("/:id", adminAuth, h.User.Delete)
		users.GET("/:id/documents", adminAuth, h.Document.ListByUser)
		users.GET("/:id/documents/archive", adminAuth, h.Document.Archive)
		users.GET("/:id/answers/student", adminAuth, h.Answer.StudentAnswers)
		users.GET("/:id/answers/company", adminAuth, h.Answer.CompanyAnswers)
	}

	// ── companies ──
	companies := v1.Group("/companies", sessionAuth)
	{
		companies.GET("", h.Company.List)
		companies.GET("/:id", h.Company.Get)
		companies.POST("", h.Company.Create)
		companies.PUT("/:id", adminAuth, h.Company.Update)
		companies.DELETE("/:id", adminAuth, h.Company.Delete)
	}

	// ── internships ──
	internships := v1.Group("/internships", sessionAuth)
	{
		internships.POST("", h.Internship.Upsert)
		internships.GET("/me", h.Internship.Mine)

		// Status changes are open to the owning student for the review
		// stages; the service enforces ownership and the document gates.
		internships.PUT("/:id/status", h.Internship.UpdateStatus)

		internships.GET("", adminAuth, h.Internship.List)
		internships.GET("/export", adminAuth, h.Internship.Export)
		internships.GET("/:id", adminAuth, h.Internship.Get)
		internships.PUT("/:id", adminAuth, h.Internship.Update)
		internships.DELETE("/:id", adminAuth, h.Internship.Delete)
	}

	// ── documents ──
	documents := v1.Group("/documents", sessionAuth)
	{
		documents.POST("", h.Document.Upload)
		documents.GET("/me", h.Document.Mine)
		documents.GET("/me/progress", h.Document.Progress)
		documents.GET("/requirements", h.Document.Requirements)
		documents.GET("", adminAuth, h.Document.ListAll)
		documents.PUT("/:id", h.Document.Replace)
		documents.GET("/:id/download", h.Document.Download)
		documents.DELETE("/:id", h.Document.Delete)
	}

	// ── otp ──
	otp := v1.Group("/otp")
	{
		otp.POST("", sessionAuth, h.OTP.Generate)
		otp.POST("/validate",
			middleware.RateLimit(redisClient, logger, "otp", 10, time.Minute),
			h.OTP.Validate)
	}

	// ── questions ──
	questions := v1.Group("/questions")
	{
		questions.GET("", h.Question.List)
		questions.GET("/statistics", sessionAuth, adminAuth, h.Question.Statistics)
		questions.POST("", sessionAuth, adminAuth, h.Question.Create)
		questions.PUT("/:id", sessionAuth, adminAuth, h.Question.Update)
		questions.DELETE("/:id", sessionAuth, adminAuth, h.Question.Delete)
	}

	// ── answers ──
	answers := v1.Group("/answers")
	{
		answers.POST("/student", sessionAuth, h.Answer.SubmitStudent)
		answers.GET("/student/me", sessionAuth, h.Answer.MyAnswers)
		answers.POST("/company", capabilityAuth, h.Answer.SubmitCompany)
	}

	return r
}
