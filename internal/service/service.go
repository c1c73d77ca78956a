package service

import (
	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Cadre        CadreService
	Competition  CompetitionService
	Contribution ContributionService
	Training     TrainingService
	Deduction    DeductionService
	Sync         SyncService
	Setting      SettingService
	Auth         AuthService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) *Service {
	setting := NewSettingService(repo, logger)
	return &Service{
		Cadre: NewCadreService(repo, logger),
		Competition: newRecordService(repo.Competition, "比赛成绩",
			(*dto.CreateCompetitionRequest).ToModel, logger),
		Contribution: newRecordService(repo.Contribution, "协会贡献",
			(*dto.CreateContributionRequest).ToModel, logger),
		Training: newRecordService(repo.Training, "新生指导记录",
			(*dto.CreateTrainingRequest).ToModel, logger),
		Deduction: newRecordService(repo.Deduction, "职责扣分",
			(*dto.CreateDeductionRequest).ToModel, logger),
		Sync:    NewSyncService(repo, logger),
		Setting: setting,
		Auth:    NewAuthService(setting, jwtMgr, logger),
		Export:  NewExportService(repo, logger),
	}
}
