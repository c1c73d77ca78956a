package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/service"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

// SyncHandler 数据同步 HTTP 处理器
type SyncHandler struct {
	syncSvc service.SyncService
}

// NewSyncHandler 创建 SyncHandler
func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{syncSvc: syncSvc}
}

// GetAll 导出全部数据
// GET /api/sync/all
func (h *SyncHandler) GetAll(c *gin.Context) {
	snap, err := h.syncSvc.Snapshot(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, snap)
}

// Upload 批量上传，整批成功或整批回滚
// POST /api/sync/upload
func (h *SyncHandler) Upload(c *gin.Context) {
	var req dto.SyncUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.syncSvc.Upload(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.MessageWith(c, "数据同步成功", gin.H{"counts": result})
}

// Clear 清除所有数据
// DELETE /api/sync/clear
func (h *SyncHandler) Clear(c *gin.Context) {
	if err := h.syncSvc.Clear(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	response.Message(c, "所有数据已清除")
}
