package logger

import (
	"os"
	"path/filepath"

	"github.com/fisker/biteform-backend/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger 全局日志实例，未初始化时为 Nop
	Logger = zap.NewNop()
	// Sugar 带格式化能力的日志实例
	Sugar = Logger.Sugar()
)

// Init 初始化日志系统
func Init(cfg *config.LoggingConfig) error {
	level := parseLevel(cfg.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var cores []zapcore.Core
	if cfg.Output != "file" {
		cores = append(cores, consoleCore(encoderConfig, level))
	}
	if cfg.Output == "file" || cfg.Output == "both" {
		core, err := fileCore(cfg, encoderConfig, level)
		if err != nil {
			return err
		}
		cores = append(cores, core)
	}

	Logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))
	Sugar = Logger.Sugar()
	zap.ReplaceGlobals(Logger)

	Sugar.Infof("Logger initialized: output=%s, level=%s", cfg.Output, cfg.Level)
	return nil
}

// SetLogger 替换全局 logger（测试中使用 zaptest/observer）
func SetLogger(l *zap.Logger) {
	Logger = l
	Sugar = l.Sugar()
}

func consoleCore(encoderConfig zapcore.EncoderConfig, level zapcore.Level) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)
}

// fileCore 文件输出：JSON 格式、无颜色、按大小滚动
func fileCore(cfg *config.LoggingConfig, encoderConfig zapcore.EncoderConfig, level zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, err
	}

	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	writer := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(writer), level), nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func Debug(msg string, fields ...zap.Field) { Logger.Debug(msg, fields...) }

func Debugf(format string, args ...interface{}) { Sugar.Debugf(format, args...) }

func Info(msg string, fields ...zap.Field) { Logger.Info(msg, fields...) }

func Infof(format string, args ...interface{}) { Sugar.Infof(format, args...) }

func Warn(msg string, fields ...zap.Field) { Logger.Warn(msg, fields...) }

func Warnf(format string, args ...interface{}) { Sugar.Warnf(format, args...) }

func Error(msg string, fields ...zap.Field) { Logger.Error(msg, fields...) }

func Errorf(format string, args ...interface{}) { Sugar.Errorf(format, args...) }

// Fatal 致命错误日志（会退出程序）
func Fatal(msg string, fields ...zap.Field) { Logger.Fatal(msg, fields...) }

// Fatalf 格式化致命错误日志
func Fatalf(format string, args ...interface{}) { Sugar.Fatalf(format, args...) }

// Sync 刷新缓冲区
func Sync() {
	_ = Logger.Sync()
}

// With 创建带字段的子 logger
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}
