package log

import (
	"io"
	"os"

	"talentpulse/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger JSON 輸出；warn 以下寫 stdout，warn 以上寫 stderr
func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	level, err := parseLevel(conf.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := newLogger(level, os.Stdout, os.Stderr).With(
		zap.String("service", conf.App.Name),
		zap.String("version", conf.App.Version),
	)
	logger.Info("zap logger set level", zap.Stringer("level", level))
	return logger, nil
}

// parseLevel 空值視為 info
func parseLevel(raw string) (zapcore.Level, error) {
	if raw == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(raw)
}

func newLogger(level zapcore.Level, stdout, stderr io.Writer) *zap.Logger {
	threshold := zap.NewAtomicLevelAt(level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return threshold.Enabled(l) && l < zapcore.WarnLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return threshold.Enabled(l) && l >= zapcore.WarnLevel
	})

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.AddSync(stdout), low),
		zapcore.NewCore(encoder, zapcore.AddSync(stderr), high),
	)
	// stacktrace 只在 Error+ 時出現
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
