package middlewares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/logger"
	"github.com/AmaraNavaneetha/Flavour-Hub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "mw-secret"

func whoAmI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
}

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func token(t *testing.T, id uint, role entity.Role) string {
	t.Helper()
	tok, err := utils.GenerateToken(id, role, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/any", AuthMiddleware(secret), whoAmI)
	r.GET("/staff", AuthMiddleware(secret, entity.StaffRoles()...), whoAmI)

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, "/any", "garbage").Code)

	w := serve(r, "/any", token(t, 5, entity.RoleUser))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":5,"role":"User"}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, serve(r, "/staff", token(t, 5, entity.RoleUser)).Code)
	assert.Equal(t, http.StatusOK, serve(r, "/staff", token(t, 6, entity.RoleEmployee1)).Code)
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cart", OptionalAuth(secret), whoAmI)

	w := serve(r, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":0,"role":""}`, w.Body.String())

	w = serve(r, "/cart", "expired-or-bad")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":0,"role":""}`, w.Body.String())

	w = serve(r, "/cart", token(t, 9, entity.RoleAdmin))
	assert.JSONEq(t, `{"userId":9,"role":"Admin"}`, w.Body.String())
}

func TestWSAuthMiddleware_QueryToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/live", WSAuthMiddleware(secret, entity.StaffRoles()...), whoAmI)

	assert.Equal(t, http.StatusUnauthorized, serve(r, "/live", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(r, "/live?token="+token(t, 1, entity.RoleUser), "").Code)
	assert.Equal(t, http.StatusOK, serve(r, "/live?token="+token(t, 2, entity.RoleEmployee2), "").Code)
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(logger.NewWithWriter(&buf, "test", "info")))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusTeapot, "pong") })

	w := serve(r, "/ping", "")
	reqID := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, reqID)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "http request", line["msg"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, reqID, line["request_id"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, "/ping", line["path"])
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger.Discard()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"internal server error"}`, w.Body.String())
}
