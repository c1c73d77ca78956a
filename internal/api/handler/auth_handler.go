package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/service"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

// AuthHandler 管理员认证 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 管理员登录
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, result)
}
