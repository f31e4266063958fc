package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Backoffice/config"
	"Backoffice/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type router interface {
	RegisterRouter(r gin.IRouter)
}

func testConfig() *config.Config {
	return &config.Config{Jwt: &config.Jwt{Secret: "handler-test-secret", Issuer: "backoffice"}}
}

func newTestEngine(h router) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRouter(r.Group("/api"))
	return r
}

func bearer(t *testing.T, subject string, roles ...string) string {
	t.Helper()
	conf := testConfig()
	token, err := jwt.GenerateToken([]byte(conf.Jwt.Secret), conf.Jwt.Issuer, subject, roles, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r http.Handler, method, target, authorization, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
