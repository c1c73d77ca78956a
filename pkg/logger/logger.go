package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gummy1803-ai/assessment-system/config"
)

const serviceName = "cadre-assessment"

// NewLogger 按日志配置构建 Zap 实例
//
// json 用于服务端部署，console 用于命令行工具与本地调试。
// Output 为空时写 stderr，命令行导出到 stdout 的数据不会混入日志。
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zapCfg, err := baseConfig(cfg.Format)
	if err != nil {
		return nil, err
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("日志级别 %q 无法识别: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Output != "" {
		zapCfg.OutputPaths = []string{cfg.Output}
		zapCfg.ErrorOutputPaths = []string{cfg.Output}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("构建考核服务日志器失败: %w", err)
	}

	return logger.Named("assessment"), nil
}

func baseConfig(format string) (zap.Config, error) {
	switch format {
	case "console":
		c := zap.NewDevelopmentConfig()
		c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		c.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		return c, nil
	case "json", "":
		c := zap.NewProductionConfig()
		c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		c.InitialFields = map[string]interface{}{"service": serviceName}
		return c, nil
	default:
		return zap.Config{}, fmt.Errorf("日志格式 %q 不受支持，可选 json 或 console", format)
	}
}
