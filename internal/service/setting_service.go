package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/internal/model"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
)

// SettingService 系统设置业务接口
// 管理员密码以明文保存在 settings 表
type SettingService interface {
	// GetPassword 返回当前管理员密码，未设置时返回默认密码
	GetPassword(ctx context.Context) (string, error)
	SetPassword(ctx context.Context, req *dto.UpdatePasswordRequest) error
	// EnsureDefaults 写入缺失的默认设置，不覆盖已有值
	EnsureDefaults(ctx context.Context) error
}

type settingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingService 创建 SettingService 实例
func NewSettingService(repo *repository.Repository, logger *zap.Logger) SettingService {
	return &settingService{repo: repo, logger: logger}
}

func (s *settingService) GetPassword(ctx context.Context) (string, error) {
	value, found, err := s.repo.Setting.Get(ctx, model.SettingAdminPassword)
	if err != nil {
		s.logger.Error("查询管理员密码失败", zap.Error(err))
		return "", err
	}
	if !found {
		return model.DefaultAdminPassword, nil
	}
	return value, nil
}

func (s *settingService) SetPassword(ctx context.Context, req *dto.UpdatePasswordRequest) error {
	if err := dto.Validate(req); err != nil {
		return err
	}
	if err := s.repo.Setting.Set(ctx, model.SettingAdminPassword, req.Password); err != nil {
		s.logger.Error("更新管理员密码失败", zap.Error(err))
		return err
	}
	s.logger.Info("管理员密码已更新")
	return nil
}

func (s *settingService) EnsureDefaults(ctx context.Context) error {
	created, err := s.repo.Setting.EnsureDefault(ctx, model.SettingAdminPassword, model.DefaultAdminPassword)
	if err != nil {
		s.logger.Error("写入默认设置失败", zap.Error(err))
		return err
	}
	if created {
		s.logger.Info("已写入默认管理员密码")
	}
	return nil
}
