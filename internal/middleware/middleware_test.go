package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/placement-api/internal/models"
	"github.com/noah-isme/placement-api/internal/service"
	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

type staticValidator map[string]*models.JWTClaims

func (v staticValidator) ValidateToken(token string) (*models.JWTClaims, error) {
	if claims, ok := v[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

func newRouter(metrics *service.MetricsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(metrics))
	validator := staticValidator{
		"student":   {UserID: 1, Role: models.RoleStudent},
		"recruiter": {UserID: 2, Role: models.RoleRecruiter},
	}
	r.GET("/jobs", JWT(validator), RequireRoles(models.RoleRecruiter), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", Claims(c).UserID)
	})
	return r
}

func request(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestJWTAndRoles(t *testing.T) {
	r := newRouter(nil)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic recruiter", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"wrong role", "Bearer student", http.StatusForbidden},
		{"allowed", "bearer recruiter", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := request(r, tc.header)
			assert.Equal(t, tc.status, rec.Code)
		})
	}

	assert.Equal(t, "2", request(r, "Bearer recruiter").Body.String())
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/jobs", RequireRoles(models.RoleStudent), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, request(r, "").Code)
}

func TestMetricsRecordsRequests(t *testing.T) {
	metrics := service.NewMetricsService()
	r := newRouter(metrics)

	request(r, "Bearer recruiter")
	request(r, "")

	assert.Equal(t, uint64(2), metrics.Snapshot().RequestsTotal)
}

type auditSink struct {
	entries []*models.AuditLog
}

func (s *auditSink) Create(_ context.Context, entry *models.AuditLog) error {
	s.entries = append(s.entries, entry)
	return nil
}

func TestAuditRecordsSuccessfulRequestsOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sink := &auditSink{}
	validator := staticValidator{"recruiter": {UserID: 2, Role: models.RoleRecruiter}}
	r := gin.New()
	r.PATCH("/placements/:id/status", JWT(validator), Audit(sink, nil, models.AuditActionPlacementStatus, "placement"), func(c *gin.Context) {
		if c.Param("id") == "0" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	})

	for _, id := range []string{"8", "0"} {
		req := httptest.NewRequest(http.MethodPatch, "/placements/"+id+"/status", nil)
		req.Header.Set("Authorization", "Bearer recruiter")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, sink.entries, 1)
	entry := sink.entries[0]
	assert.Equal(t, models.AuditActionPlacementStatus, entry.Action)
	assert.Equal(t, "8", *entry.ResourceID)
	assert.Equal(t, int64(2), *entry.UserID)
	assert.Contains(t, string(entry.Details), `"status":204`)
}
