package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/lucky-slots/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = constants.LogMaxSizeMB * 1024 * 1024
	timeFmt     = "2006/01/02 15:04:05.000"
)

// setupLogging returns a rotating file logger when debug is set, a no-op logger otherwise
// The terminal belongs to the UI, so nothing is ever written to stdout/stderr
// The returned rotator is nil when logging is disabled
func setupLogging(debug bool) (*zap.Logger, *lumberjack.Logger) {
	if !debug {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return zap.NewNop(), nil
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeFmt)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(rotator), zapcore.DebugLevel)

	logger := zap.New(core, zap.AddCaller())
	// Stray stdlib log output from dependencies lands in the same file
	zap.RedirectStdLog(logger)
	return logger, rotator
}
