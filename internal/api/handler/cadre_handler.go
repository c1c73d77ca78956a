package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/service"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

// CadreHandler 干部模块 HTTP 处理器
type CadreHandler struct {
	cadreSvc service.CadreService
}

// NewCadreHandler 创建 CadreHandler
func NewCadreHandler(cadreSvc service.CadreService) *CadreHandler {
	return &CadreHandler{cadreSvc: cadreSvc}
}

// ListCadres 获取全部干部
// GET /api/cadres
func (h *CadreHandler) ListCadres(c *gin.Context) {
	cadres, err := h.cadreSvc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, cadres)
}

// GetCadre 获取单个干部，不存在时返回 null
// GET /api/cadres/:id
func (h *CadreHandler) GetCadre(c *gin.Context) {
	cadre, err := h.cadreSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, cadre)
}

// SaveCadre 创建或覆盖干部
// POST /api/cadres
func (h *CadreHandler) SaveCadre(c *gin.Context) {
	var req dto.SaveCadreRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.cadreSvc.Save(c.Request.Context(), &req); err != nil {
		handleError(c, err)
		return
	}

	response.Message(c, "干部信息保存成功")
}

// DeleteCadre 删除干部及其全部子记录
// DELETE /api/cadres/:id
func (h *CadreHandler) DeleteCadre(c *gin.Context) {
	if err := h.cadreSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}

	response.Message(c, "干部信息删除成功")
}
