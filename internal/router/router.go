package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/handler"
	"github.com/noah-isme/placement-api/internal/middleware"
	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/internal/service"
	"github.com/noah-isme/placement-api/pkg/config"
	"github.com/noah-isme/placement-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/placement-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/placement-api/pkg/middleware/requestid"
)

// Handlers groups every HTTP handler the API serves.
type Handlers struct {
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Job          *handler.JobHandler
	Application  *handler.ApplicationHandler
	Placement    *handler.PlacementHandler
	Skill        *handler.SkillHandler
	Feedback     *handler.FeedbackHandler
	Credential   *handler.CredentialHandler
	Compliance   *handler.ComplianceHandler
	Notification *handler.NotificationHandler
	Dashboard    *handler.DashboardHandler
	Metrics      *handler.MetricsHandler
}

// Deps carries what the engine needs besides the handlers.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Tokens  middleware.TokenValidator
	Metrics *service.MetricsService
	Audit   middleware.AuditRecorder
}

// New builds the gin engine with the global middleware chain and all routes.
func New(deps Deps, h Handlers) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(cfg.CORS))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)

	secured := api.Group("")
	secured.Use(middleware.JWT(deps.Tokens))

	students := middleware.RequireRoles(models.RoleStudent)
	colleges := middleware.RequireRoles(models.RoleCollegeAdmin)
	recruiters := middleware.RequireRoles(models.RoleRecruiter)
	staff := middleware.RequireRoles(models.RoleCollegeAdmin, models.RoleRecruiter)
	audit := func(action, resource string) gin.HandlerFunc {
		return middleware.Audit(deps.Audit, deps.Logger, action, resource)
	}

	secured.GET("/auth/me", h.Auth.Me)
	secured.DELETE("/auth/me", audit(models.AuditActionUserDelete, "user"), h.Auth.DeleteMe)

	secured.POST("/profiles/me", h.Profile.Create)
	secured.GET("/profiles/me", h.Profile.Me)

	secured.GET("/dashboard", h.Dashboard.Stats)

	jobs := secured.Group("/jobs")
	jobs.GET("", h.Job.List)
	jobs.GET("/:id", h.Job.Get)
	jobs.POST("", recruiters, h.Job.Create)
	jobs.DELETE("/:id", recruiters, audit(models.AuditActionJobDeactivate, "job"), h.Job.Deactivate)
	jobs.GET("/:id/applications", recruiters, h.Application.ListForJob)

	applications := secured.Group("/applications")
	applications.POST("", students, h.Application.Create)
	applications.GET("", students, h.Application.ListMine)
	applications.PATCH("/:id/status", recruiters, audit(models.AuditActionApplicationStatus, "application"), h.Application.UpdateStatus)
	applications.POST("/:id/feedback", recruiters, h.Feedback.Submit)
	applications.GET("/:id/feedback", staff, h.Feedback.List)

	placements := secured.Group("/placements")
	placements.POST("", staff, audit(models.AuditActionPlacementRecord, "placement"), h.Placement.Record)
	placements.PATCH("/:id/status", staff, audit(models.AuditActionPlacementStatus, "placement"), h.Placement.UpdateStatus)
	placements.GET("/report", colleges, h.Placement.Report)

	skills := secured.Group("/skills", students)
	skills.POST("", h.Skill.Add)
	skills.GET("", h.Skill.List)

	credentials := secured.Group("/credentials")
	credentials.POST("", colleges, audit(models.AuditActionCredentialIssue, "credential"), h.Credential.Issue)
	credentials.GET("", students, h.Credential.ListMine)
	credentials.POST("/:hash/verify", staff, h.Credential.Verify)
	secured.GET("/students/:id/credentials", staff, h.Credential.ListForStudent)

	compliance := secured.Group("/compliance", colleges)
	compliance.POST("", h.Compliance.Save)
	compliance.GET("", h.Compliance.List)

	notifications := secured.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.POST("", staff, h.Notification.Create)
	notifications.PATCH("/:id/read", h.Notification.MarkRead)
	notifications.POST("/read-all", h.Notification.MarkAllRead)

	return r
}
