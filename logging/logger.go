// Package logging 基于 log/slog 的结构化日志，按组件打标签
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"walltea/config"
)

// Setup 根据配置初始化默认 logger，并接管标准库 log 的输出
func Setup(cfg config.LogConfig) *slog.Logger {
	return SetupWriter(os.Stdout, cfg)
}

// SetupWriter 同 Setup，可指定输出位置（测试用）
func SetupWriter(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel 解析日志级别，无法识别时为 info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Component 返回带 component 字段的 logger
func Component(name string) *slog.Logger {
	return slog.Default().With("component", name)
}
