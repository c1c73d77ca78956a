package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/internal/api/handler"
	"github.com/gummy1803-ai/assessment-system/internal/api/middleware"
	"github.com/gummy1803-ai/assessment-system/internal/api/router"
	"github.com/gummy1803-ai/assessment-system/internal/bootstrap"
	applogger "github.com/gummy1803-ai/assessment-system/pkg/logger"
	"github.com/gummy1803-ai/assessment-system/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_path", cfg.Database.Path),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 数据库、迁移、默认设置、依赖注入
	app, err := bootstrap.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("初始化失败", zap.Error(err))
	}
	logger.Info("数据库已就绪")

	// 4. 连接 Redis（可选：连接失败时不限流，不中断启动）
	var (
		rdb     *redis.Client
		limiter middleware.RateLimiter
	)
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，限流功能将不可用", zap.Error(err))
		} else {
			limiter = rdb
		}
	}

	if cfg.Auth.RequireToken {
		logger.Info("管理接口已启用 Token 认证")
	}

	// 5. 初始化路由
	h := handler.NewHandler(app.Service)
	engine := router.Setup(cfg, h, app.JWT, limiter, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", fmt.Sprintf("http://localhost:%d", cfg.Server.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if err := app.Close(); err != nil {
		logger.Error("关闭数据库错误", zap.Error(err))
	} else {
		logger.Info("数据库连接已关闭")
	}

	if rdb != nil {
		_ = rdb.Close()
	}

	logger.Info("服务器已关闭")
}
