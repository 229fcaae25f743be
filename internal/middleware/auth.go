package middleware

import (
	"net/http"
	"strings"

	"fotoshare-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	// 检查格式是否为 "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// JWTAuth 要求请求携带合法登录令牌，否则 401。
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("admin", claims.Admin)
		c.Next()
	}
}

// OptionalJWTAuth 解析登录令牌但不强制：匿名请求照常放行。
// 公开照片的查看路径允许匿名访问，由权限解析决定可见性。
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if ok {
			if claims, err := utils.ParseLoginToken(token); err == nil {
				c.Set("id", claims.ID)
				c.Set("username", claims.Username)
				c.Set("admin", claims.Admin)
			}
		}
		c.Next()
	}
}

// AdminOnly 要求当前用户为管理员，需在 JWTAuth 之后使用。
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if admin, ok := c.Get("admin"); !ok || admin != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限"})
			c.Abort()
			return
		}
		c.Next()
	}
}
