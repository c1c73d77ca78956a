package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

// Version 服务版本
const Version = "1.0.0"

// SystemHandler 服务信息与健康检查
type SystemHandler struct{}

// NewSystemHandler 创建 SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Info 服务信息
// GET /
func (h *SystemHandler) Info(c *gin.Context) {
	response.OK(c, gin.H{
		"message":       "干部考核管理系统同步服务器",
		"version":       Version,
		"status":        "running",
		"documentation": "访问 /api/ 端点获取API信息",
		"endpoints": gin.H{
			"sync":          "/api/sync/all",
			"cadres":        "/api/cadres",
			"competitions":  "/api/competitions",
			"contributions": "/api/contributions",
			"trainings":     "/api/trainings",
			"deductions":    "/api/deductions",
			"excel":         "/api/export/excel",
		},
	})
}

// Health 存活检查
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}
