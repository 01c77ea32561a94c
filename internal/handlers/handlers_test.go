package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tivrox/agency-api/internal/audit"
	"github.com/tivrox/agency-api/internal/config"
	infraRepo "github.com/tivrox/agency-api/internal/infra/repository"
	"github.com/tivrox/agency-api/internal/middleware"
	"github.com/tivrox/agency-api/internal/models"
	"github.com/tivrox/agency-api/internal/notify"
	ucLead "github.com/tivrox/agency-api/internal/usecase/lead"
)

const (
	testJWTSecret = "test-secret"
	testAdminUser = "admin"
	testAdminPass = "pass1234"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	repo   *infraRepo.LeadGormRepository
}

// newTestEnv wires the real handlers against an in-memory database. Rate
// limiting is left out so tests can hammer the endpoints freely.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Lead{}, &models.AuditLog{}))

	hashed, err := bcrypt.GenerateFromPassword([]byte(testAdminPass), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.Admin{
		ID:           uuid.NewString(),
		Username:     testAdminUser,
		PasswordHash: string(hashed),
	}).Error)

	cfg := &config.Config{JWTSecret: testJWTSecret}

	repo := infraRepo.NewLeadGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))
	notifier := notify.NewService(notify.StubSender{}, "")

	createUC := ucLead.NewCreateLead(repo, dispatcher, notifier)
	updateUC := ucLead.NewUpdateStatus(repo, dispatcher)
	deleteUC := ucLead.NewDeleteLead(repo, dispatcher)

	bookingHandler := NewBookingHandler(createUC)
	authHandler := NewAuthHandler(db, cfg, dispatcher)
	adminHandler := NewAdminHandler(repo, updateUC, deleteUC, dispatcher)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/bookings", bookingHandler.Create)
	api.POST("/admin/login", authHandler.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/bookings", adminHandler.List)
		admin.GET("/bookings/export", adminHandler.Export)
		admin.PUT("/bookings/:id/status", adminHandler.UpdateStatus)
		admin.DELETE("/bookings/:id", adminHandler.Delete)
		admin.GET("/stats", adminHandler.Stats)
	}

	return &testEnv{router: r, db: db, repo: repo}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()

	rec := e.request(t, http.MethodPost, "/api/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPass,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func (e *testEnv) seedLead(t *testing.T, service, status string, createdAt time.Time) *models.Lead {
	t.Helper()
	l := &models.Lead{
		ID:                 uuid.NewString(),
		FullName:           "Seeded Lead",
		Email:              "seed@x.com",
		Phone:              "+1-000",
		Service:            service,
		ProjectDescription: "seeded",
		Status:             status,
		CreatedAt:          createdAt,
	}
	require.NoError(t, e.db.Create(l).Error)
	return l
}

func validBookingBody() map[string]any {
	return map[string]any{
		"full_name":           "Jane Doe",
		"email":               "jane@x.com",
		"phone":               "+1-555",
		"service":             "Video Editing",
		"project_description": "promo video",
	}
}
