package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/service"
	pkgerrors "github.com/gummy1803-ai/assessment-system/pkg/errors"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

const msgMissingPassword = "缺少密码参数"

// SettingHandler 系统设置 HTTP 处理器
type SettingHandler struct {
	settingSvc service.SettingService
}

// NewSettingHandler 创建 SettingHandler
func NewSettingHandler(settingSvc service.SettingService) *SettingHandler {
	return &SettingHandler{settingSvc: settingSvc}
}

// GetPassword 获取管理员密码
// GET /api/settings/password
func (h *SettingHandler) GetPassword(c *gin.Context) {
	password, err := h.settingSvc.GetPassword(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.PasswordResponse{Password: password})
}

// UpdatePassword 更新管理员密码
// POST /api/settings/password
func (h *SettingHandler) UpdatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if !bindJSONWith(c, &req, msgMissingPassword) {
		return
	}

	if err := h.settingSvc.SetPassword(c.Request.Context(), &req); err != nil {
		if pkgerrors.IsValidation(err) {
			response.BadRequest(c, msgMissingPassword)
			return
		}
		handleError(c, err)
		return
	}

	response.Message(c, "密码更新成功")
}
