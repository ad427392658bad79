package middleware

import (
	"RunBriefing/internal/api/config"
	"RunBriefing/internal/pkg/response"
	"crypto/subtle"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware 校验管理端共享密钥
//
// 服务端未配置密钥属于部署故障，返回 500 以区别于客户端凭证错误
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := config.Cfg.Admin.Password
		if secret == "" {
			log.ErrorContext(c.Request.Context(), "admin password is not configured")
			response.Fail(c, http.StatusInternalServerError, "Server configuration error")
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized: Missing or invalid authorization header")
			return
		}

		provided := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			response.Fail(c, http.StatusUnauthorized, "Unauthorized: Invalid password")
			return
		}

		c.Next()
	}
}
