package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/internal/service"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

// record 子记录需暴露自增主键，用于创建成功后回传 id
type record interface {
	RecordID() int64
}

// RecordHandler 干部子记录（比赛、贡献、指导、扣分）HTTP 处理器
type RecordHandler[T record, R any] struct {
	svc  service.RecordService[T, R]
	kind string
}

// NewRecordHandler 创建 RecordHandler，kind 用于响应消息
func NewRecordHandler[T record, R any](svc service.RecordService[T, R], kind string) *RecordHandler[T, R] {
	return &RecordHandler[T, R]{svc: svc, kind: kind}
}

// List 获取全部记录
// GET /api/{kind}
func (h *RecordHandler[T, R]) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, rows)
}

// ListByCadre 获取某干部的记录
// GET /api/{kind}/cadre/:id
func (h *RecordHandler[T, R]) ListByCadre(c *gin.Context) {
	rows, err := h.svc.ListByCadre(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, rows)
}

// Create 添加记录
// POST /api/{kind}
func (h *RecordHandler[T, R]) Create(c *gin.Context) {
	req := new(R)
	if !bindJSON(c, req) {
		return
	}

	rec, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.MessageWith(c, h.kind+"添加成功", gin.H{"id": (*rec).RecordID()})
}

// Delete 删除单条记录
// DELETE /api/{kind}/:id
func (h *RecordHandler[T, R]) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的记录ID")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}

	response.Message(c, h.kind+"删除成功")
}
