// Package cli 实现 assessctl 离线维护命令
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gummy1803-ai/assessment-system/config"
	"github.com/gummy1803-ai/assessment-system/internal/bootstrap"
	applogger "github.com/gummy1803-ai/assessment-system/pkg/logger"
)

// RootOptions 所有子命令共用的全局参数
type RootOptions struct {
	ConfigPath string
	DBPath     string // 非空时覆盖配置中的 db.path
	Verbose    bool
}

// NewRootCommand 创建 assessctl 根命令
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "assessctl",
		Short: "干部考核数据维护工具",
		Long:  "直接操作干部考核数据库文件：导出、导入、清空数据以及管理员密码维护。",
		// 错误由 main 统一输出
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "配置文件路径")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "数据库文件路径（覆盖配置）")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "输出详细日志")

	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewPasswordCommand(opts))

	return cmd
}

// openApp 按全局参数打开数据库，调用方负责 Close
func openApp(ctx context.Context, opts *RootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.Database.Path = opts.DBPath
	}

	// 命令行默认只输出告警以上日志，避免干扰标准输出
	cfg.Log.Format = "console"
	if opts.Verbose {
		cfg.Log.Level = "debug"
	} else {
		cfg.Log.Level = "warn"
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, err
	}

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("打开数据库 %s 失败: %w", cfg.Database.Path, err)
	}
	return app, nil
}
