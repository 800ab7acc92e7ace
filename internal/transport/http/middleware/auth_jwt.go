package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"go-notes-admin/internal/core/auth"
	resp "go-notes-admin/internal/transport/http/response"
)

// AuthJWT 解析 Bearer token 并把 userId/roles 写入 context；
// requireRole 非空时要求角色命中
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, resp.CodeUnauthorized, "missing token")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.Abort(c, resp.CodeUnauthorized, "invalid token")
			return
		}
		if requireRole != "" && !claims.HasRole(requireRole) {
			resp.Abort(c, resp.CodeForbidden, "forbidden")
			return
		}
		c.Set("userId", claims.UID)
		c.Set("username", claims.Username)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}
