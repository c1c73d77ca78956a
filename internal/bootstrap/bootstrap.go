// Package bootstrap 组装服务端与命令行共用的存储和业务层
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/internal/repository"
	"github.com/gummy1803-ai/assessment-system/internal/service"
	"github.com/gummy1803-ai/assessment-system/pkg/database"
	"github.com/gummy1803-ai/assessment-system/pkg/jwt"
)

// App 已完成迁移与默认设置写入的应用依赖
type App struct {
	DB      *gorm.DB
	Repo    *repository.Repository
	Service *service.Service
	JWT     *jwt.Manager
}

// New 连接数据库、执行迁移、写入默认设置并完成依赖注入
// 任一步失败时已打开的连接会被关闭
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("获取底层 sql.DB 失败: %w", err)
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, logger)

	if err := svc.Setting.EnsureDefaults(ctx); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("写入默认设置失败: %w", err)
	}

	return &App{DB: db, Repo: repo, Service: svc, JWT: jwtMgr}, nil
}

// Close 关闭数据库连接
func (a *App) Close() error {
	return database.Close(a.DB)
}
