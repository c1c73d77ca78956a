package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

const tokenJTIKey = "token_jti"

// AdminAuth 管理员 Token 认证中间件
// required 为 false 时直接放行，兼容未携带 Token 的旧客户端
func AdminAuth(jwtMgr *jwt.Manager, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !required {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token 无效或已过期")
			c.Abort()
			return
		}

		c.Set(tokenJTIKey, claims.ID)
		c.Next()
	}
}

// GetTokenJTI 读取已通过认证的 Token ID，未认证时为空
func GetTokenJTI(c *gin.Context) string {
	return c.GetString(tokenJTIKey)
}
