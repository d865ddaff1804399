package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"uniformes/internal/model"
	"uniformes/internal/service"
	"uniformes/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// stubStatisticsService returns canned aggregates for gate tests
type stubStatisticsService struct{}

func (s *stubStatisticsService) GetStatistics(ctx context.Context) (model.StatisticsResponse, error) {
	return model.StatisticsResponse{TotalRequests: 1}, nil
}

func (s *stubStatisticsService) ListDeliveries(ctx context.Context, page, limit int) ([]model.Delivery, int64, error) {
	return nil, 0, nil
}

func newAdminRouter(t *testing.T) (*gin.Engine, service.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("codigo-admin"), bcrypt.MinCost)
	require.NoError(t, err)
	sessions := service.NewSessionService(handlerSecret, string(hash))

	router := gin.New()
	NewSessionHandler(sessions).RegisterRoutes(router.Group(""))
	NewStatisticsHandler(&stubStatisticsService{}, handlerSecret).RegisterRoutes(router.Group(""))
	return router, sessions
}

func TestCreateAnonymousSession(t *testing.T) {
	router, _ := newAdminRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/session", nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["user_id"])
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, service.RoleAnonymous, data["role"])
}

func TestCreateAdminSessionWrongCode(t *testing.T) {
	router, _ := newAdminRouter(t)

	body, _ := json.Marshal(AdminSessionRequest{AccessCode: "incorrecto"})
	req := httptest.NewRequest(http.MethodPost, "/api/session/admin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatisticsRequireAdminRole(t *testing.T) {
	router, sessions := newAdminRouter(t)

	anon, err := sessions.SignInAnonymously(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	req.Header.Set("Authorization", "Bearer "+anon.Token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "anonymous sessions cannot read statistics")

	admin, err := sessions.SignInAdmin(context.Background(), "codigo-admin")
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/api/statistics", nil)
	req.Header.Set("Authorization", "Bearer "+admin.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogIsPublic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCatalogHandler().RegisterRoutes(router.Group(""))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Zapato Mecánico")
	assert.Contains(t, w.Body.String(), "RENOVACION_3M")
}
