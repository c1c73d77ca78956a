package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/internal/dto"
	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
)

var (
	ErrInvalidPassword = errors.New("密码错误")
)

// AuthService 管理员认证业务接口
type AuthService interface {
	// Login 校验管理员密码并签发 Access Token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	setting SettingService
	jwtMgr  *jwt.Manager
	logger  *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(setting SettingService, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{
		setting: setting,
		jwtMgr:  jwtMgr,
		logger:  logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	stored, err := s.setting.GetPassword(ctx)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Password)) != 1 {
		s.logger.Warn("管理员登录失败：密码错误")
		return nil, ErrInvalidPassword
	}

	token, err := s.jwtMgr.GenerateAdminToken()
	if err != nil {
		s.logger.Error("签发 Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int(s.jwtMgr.AccessTokenTTL().Seconds()),
	}, nil
}
