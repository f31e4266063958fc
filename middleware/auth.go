package middleware

import (
	"net/http"
	"strings"

	"Backoffice/pkg/context"
	"Backoffice/pkg/jwt"
	"Backoffice/pkg/log"
	"Backoffice/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer token, 把 sub 和 roles 放进请求上下文
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, strings.TrimSpace(parts[1]))
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		context.SetPrincipal(c, context.Principal{
			Subject: claims.Subject,
			Roles:   claims.Roles,
		})
		c.Next()
	}
}

// RequireRoles 持有任一角色即放行
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := context.GetPrincipal(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !p.HasRole(roles...) {
			response.Abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}
