package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"shiftline/backend/pkg/response"
)

// MustGetEmployeeID 从 Gin 上下文中安全提取 employee_id。
// 如果 JWT 中间件未正确注入 employee_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetEmployeeID(c *gin.Context) (string, bool) {
	v, exists := c.Get("employee_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// getTokenMeta 提取 JWT 中间件注入的 jti 与过期时间（登出用）
func getTokenMeta(c *gin.Context) (string, time.Time) {
	jti, _ := c.Get("jti")
	expiresAt, _ := c.Get("token_expires_at")

	jtiStr, _ := jti.(string)
	expTime, _ := expiresAt.(time.Time)
	return jtiStr, expTime
}
