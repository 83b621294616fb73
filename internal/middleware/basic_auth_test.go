package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nirajdighe005/alj-java-challenge/internal/auth"
	"github.com/nirajdighe005/alj-java-challenge/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAuthedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := auth.NewStore(
		auth.Account{Username: "user", Password: "password", Role: auth.RoleUser},
		auth.Account{Username: "admin", Password: "admin", Role: auth.RoleAdmin},
	)
	assert.NoError(t, err)

	r := gin.New()
	r.Use(middleware.BasicAuthorizer(store, auth.DefaultRules(), zap.NewNop()))

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/swagger-ui/*any", ok)
	r.GET("/health", ok)
	r.POST("/api/v1/employees", ok)
	r.GET("/api/v1/employees", ok)
	return r
}

func request(r *gin.Engine, method, path, username, password string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if username != "" {
		req.SetBasicAuth(username, password)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBasicAuthorizer(t *testing.T) {
	r := newAuthedRouter(t)

	t.Run("public path passes without credentials", func(t *testing.T) {
		w := request(r, http.MethodGet, "/swagger-ui/index.html", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("fallback path requires authentication", func(t *testing.T) {
		w := request(r, http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Access Denied")
	})

	t.Run("fallback path accepts any authenticated role", func(t *testing.T) {
		w := request(r, http.MethodGet, "/health", "user", "password")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("role gate blocks user on admin route", func(t *testing.T) {
		w := request(r, http.MethodPost, "/api/v1/employees", "user", "password")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("role gate admits admin", func(t *testing.T) {
		w := request(r, http.MethodPost, "/api/v1/employees", "admin", "admin")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid credentials rejected on gated route", func(t *testing.T) {
		w := request(r, http.MethodGet, "/api/v1/employees", "user", "wrong")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
