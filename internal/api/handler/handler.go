package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/service"
	pkgerrors "github.com/gummy1803-ai/assessment-system/pkg/errors"
	"github.com/gummy1803-ai/assessment-system/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	System       *SystemHandler
	Auth         *AuthHandler
	Cadre        *CadreHandler
	Competition  *RecordHandler[model.Competition, dto.CreateCompetitionRequest]
	Contribution *RecordHandler[model.Contribution, dto.CreateContributionRequest]
	Training     *RecordHandler[model.Training, dto.CreateTrainingRequest]
	Deduction    *RecordHandler[model.Deduction, dto.CreateDeductionRequest]
	Sync         *SyncHandler
	Setting      *SettingHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		System:       NewSystemHandler(),
		Auth:         NewAuthHandler(svc.Auth),
		Cadre:        NewCadreHandler(svc.Cadre),
		Competition:  NewRecordHandler(svc.Competition, "比赛成绩"),
		Contribution: NewRecordHandler(svc.Contribution, "协会贡献"),
		Training:     NewRecordHandler(svc.Training, "新生指导记录"),
		Deduction:    NewRecordHandler(svc.Deduction, "职责扣分"),
		Sync:         NewSyncHandler(svc.Sync),
		Setting:      NewSettingHandler(svc.Setting),
		Export:       NewExportHandler(svc.Export),
	}
}

// bindJSON 解析请求体，失败时写入 400 或 413 并返回 false
func bindJSON(c *gin.Context, req interface{}) bool {
	return bindJSONWith(c, req, "")
}

// bindJSONWith 同 bindJSON，validationMsg 非空时替换校验失败的提示
func bindJSONWith(c *gin.Context, req interface{}, validationMsg string) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, "请求体过大")
		return false
	}

	verr := dto.ValidationFrom(err)
	switch {
	case pkgerrors.IsValidation(verr) && validationMsg != "":
		response.BadRequest(c, validationMsg)
	case pkgerrors.IsValidation(verr):
		response.BadRequest(c, verr.Error())
	default:
		response.BadRequest(c, "请求体格式错误")
	}
	return false
}

// handleError 将 Service 错误映射为 HTTP 响应
func handleError(c *gin.Context, err error) {
	switch {
	case pkgerrors.IsValidation(err):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidPassword):
		response.Unauthorized(c, "密码错误")
	default:
		response.InternalError(c, err)
	}
}
