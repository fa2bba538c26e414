package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger = zap.NewNop()
	sugarLogger  = globalLogger.Sugar()
)

// Config 日志配置
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json, console
	ServiceName string
}

// Init 初始化全局日志
func Init(cfg Config) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(level))
	globalLogger = zap.New(core,
		zap.AddCaller(),
		zap.Fields(zap.String("service", cfg.ServiceName)),
	)
	sugarLogger = globalLogger.Sugar()
	return globalLogger
}

// L 返回全局 zap.Logger，未初始化时为 Nop
func L() *zap.Logger {
	return globalLogger
}

// S 返回全局 SugaredLogger
func S() *zap.SugaredLogger {
	return sugarLogger
}

// StdLog 返回写入全局 zap 的标准库 *log.Logger，供 gorm 等只接受 Printf 的组件使用
func StdLog() *log.Logger {
	return zap.NewStdLog(globalLogger)
}

// Sync 刷新缓冲区
func Sync() {
	_ = globalLogger.Sync()
}
