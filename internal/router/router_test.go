package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/noah-isme/placement-api/internal/handler"
	"github.com/noah-isme/placement-api/internal/middleware"
	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/pkg/config"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type auditCount int

func (a *auditCount) Create(context.Context, *models.AuditLog) error {
	*a++
	return nil
}

type tokens map[string]models.UserRole

func (t tokens) ValidateToken(token string) (*models.JWTClaims, error) {
	role, ok := t[token]
	if !ok {
		return nil, appErrors.ErrUnauthorized
	}
	return &models.JWTClaims{UserID: 1, Role: role}, nil
}

func newEngine(audit middleware.AuditRecorder) http.Handler {
	cfg := &config.Config{Env: config.EnvDevelopment, APIPrefix: "/api/v1"}
	return New(Deps{
		Config: cfg,
		Logger: zap.NewNop(),
		Tokens: tokens{"s": models.RoleStudent, "o": models.RoleObserver},
		Audit:  audit,
	}, Handlers{
		Auth:         handler.NewAuthHandler(nil),
		Profile:      handler.NewProfileHandler(nil),
		Job:          handler.NewJobHandler(nil, nil),
		Application:  handler.NewApplicationHandler(nil, nil),
		Placement:    handler.NewPlacementHandler(nil, nil, nil),
		Skill:        handler.NewSkillHandler(nil, nil),
		Feedback:     handler.NewFeedbackHandler(nil, nil),
		Credential:   handler.NewCredentialHandler(nil, nil),
		Compliance:   handler.NewComplianceHandler(nil, nil),
		Notification: handler.NewNotificationHandler(nil, nil),
		Dashboard:    handler.NewDashboardHandler(nil),
		Metrics:      handler.NewMetricsHandler(nil, nil),
	})
}

func serve(r http.Handler, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestRoutesEnforceAuthAndRoles(t *testing.T) {
	r := newEngine(nil)

	cases := []struct {
		method, path, token string
		status              int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/jobs", "", http.StatusUnauthorized},
		{http.MethodGet, "/api/v1/dashboard", "bogus", http.StatusUnauthorized},
		{http.MethodPost, "/api/v1/jobs", "s", http.StatusForbidden},
		{http.MethodPost, "/api/v1/compliance", "s", http.StatusForbidden},
		{http.MethodGet, "/api/v1/placements/report", "o", http.StatusForbidden},
		{http.MethodPost, "/api/v1/skills", "o", http.StatusForbidden},
		{http.MethodGet, "/api/v1/unknown", "s", http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, serve(r, tc.method, tc.path, tc.token), "%s %s", tc.method, tc.path)
	}
}

func TestRejectedMutationsAreNotAudited(t *testing.T) {
	var audited auditCount
	r := newEngine(&audited)

	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/api/v1/placements", "s"))
	assert.Equal(t, http.StatusForbidden, serve(r, http.MethodPost, "/api/v1/credentials", "o"))
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodDelete, "/api/v1/jobs/3", ""))
	assert.Zero(t, int(audited))
}
