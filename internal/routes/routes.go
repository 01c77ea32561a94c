package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/tivrox/agency-api/internal/audit"
	"github.com/tivrox/agency-api/internal/config"
	"github.com/tivrox/agency-api/internal/handlers"
	infraRepo "github.com/tivrox/agency-api/internal/infra/repository"
	"github.com/tivrox/agency-api/internal/middleware"
	"github.com/tivrox/agency-api/internal/notify"
	"github.com/tivrox/agency-api/internal/ratelimit"
	ucLead "github.com/tivrox/agency-api/internal/usecase/lead"
)

const (
	rateLimitMax    = 5
	rateLimitWindow = time.Minute
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	leadRepo := infraRepo.NewLeadGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var sender notify.EmailSender = notify.StubSender{}
	if sg := notify.NewSendgridSender(cfg.SendgridAPIKey, cfg.SenderEmail); sg != nil {
		sender = sg
	}
	notifier := notify.NewService(sender, cfg.AdminEmail)

	var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(rateLimitMax, rateLimitWindow)
	if cfg.RedisURL != "" {
		if opts, err := redis.ParseURL(cfg.RedisURL); err == nil {
			limiter = ratelimit.NewRedisLimiter(redis.NewClient(opts), rateLimitMax, rateLimitWindow)
		}
	}

	// ======================================================
	// USE CASES — LEADS
	// ======================================================
	createLeadUC := ucLead.NewCreateLead(
		leadRepo,
		auditDispatcher,
		notifier,
	)

	updateStatusUC := ucLead.NewUpdateStatus(
		leadRepo,
		auditDispatcher,
	)

	deleteLeadUC := ucLead.NewDeleteLead(
		leadRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(createLeadUC)
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(
		leadRepo,
		updateStatusUC,
		deleteLeadUC,
		auditDispatcher,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/bookings", middleware.RateLimit(limiter), bookingHandler.Create)

		api.POST("/admin/login", middleware.RateLimit(limiter), authHandler.Login)

		// ------------------------------
		// ADMIN (AUTHENTICATED)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/bookings", adminHandler.List)
			admin.GET("/bookings/export", adminHandler.Export)
			admin.PUT("/bookings/:id/status", adminHandler.UpdateStatus)
			admin.DELETE("/bookings/:id", adminHandler.Delete)

			admin.GET("/stats", adminHandler.Stats)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
