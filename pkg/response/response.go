package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 与客户端约定的响应格式：
//   - 查询接口直接返回数据本身（数组 / 对象 / null）
//   - 写接口返回 {"message": "..."}，可附带额外字段
//   - 错误统一为 {"error": "..."}

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody 写操作成功响应结构
type MessageBody struct {
	Message string `json:"message"`
}

// ── 成功响应 ──

// OK 200 直接返回数据
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 200 写操作成功
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// MessageWith 200 写操作成功并附带字段
func MessageWith(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalError 500，携带底层错误信息
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, err.Error())
}
