package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"fotoshare-server/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制普通请求体大小，上传路由除外。
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 跳过照片上传路由，由 UploadBodyLimitMiddleware 单独限制
		if c.Request.Method == http.MethodPost && strings.HasSuffix(c.Request.URL.Path, "/photos") {
			c.Next()
			return
		}

		// 普通 JSON 请求 2MB 足够
		maxBytes := int64(2) * 1024 * 1024
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		c.Next()
	}
}

// UploadBodyLimitMiddleware 限制上传接口的请求体大小
func UploadBodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := config.Get().Upload.MaxSizeMB
		if maxSizeMB <= 0 {
			maxSizeMB = 10
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes && c.Request.ContentLength != -1 {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
