package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Backoffice/config"
	"Backoffice/handler"
	"Backoffice/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestEngine(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	conf := &config.Config{App: &config.App{Env: "test", Debug: true}, Jwt: &config.Jwt{Secret: "server-test"}}
	return NewGinEngine(conf, &Handlers{
		Health:     &handler.Health{},
		Customer:   &handler.Customer{Config: conf, CustomerService: service.NewMockICustomerService(ctrl)},
		Permission: &handler.Permission{Config: conf, PermissionService: service.NewMockIPermissionService(ctrl)},
		Wishlist:   &handler.Wishlist{Config: conf, WishlistService: service.NewMockIWishlistService(ctrl)},
	})
}

func TestNewGinEngineRoutes(t *testing.T) {
	r := newTestEngine(t)

	routes := make(map[string]bool)
	for _, route := range r.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /metrics",
		"GET /api/health",
		"GET /api/customer",
		"GET /api/customer/lookup/:phone",
		"POST /api/customer/register",
		"GET /api/customer/:id",
		"PUT /api/customer/:id",
		"GET /api/permissions",
		"GET /api/permissions/by-resource",
		"GET /api/permissions/my-permissions",
		"GET /api/permissions/:id",
		"GET /api/wishlist",
		"POST /api/wishlist",
		"GET /api/wishlist/check",
		"DELETE /api/wishlist/:id",
	} {
		assert.True(t, routes[want], want)
	}
}

func TestNewGinEngineMiddleware(t *testing.T) {
	r := newTestEngine(t)

	t.Run("cors preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/wishlist", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request id and auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wishlist", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})
}

func TestServerID(t *testing.T) {
	assert.Regexp(t, `^[0-9.]+:8080$`, serverID(8080))
}
