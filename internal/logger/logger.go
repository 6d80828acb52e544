package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "storefront-gateway"

var log *zap.Logger

// Init builds the global logger: JSON in production, colored console otherwise.
// LOG_LEVEL overrides the default level of either mode.
func Init(env string) {
	cfg := developmentConfig()
	if env == "production" {
		cfg = productionConfig()
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if lvl, err := zap.ParseAtomicLevel(raw); err == nil {
			cfg.Level = lvl
		}
	}

	built, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic(err)
	}
	log = built.With(zap.String("service", serviceName))
}

func productionConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stdout"}

	enc := &cfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.MessageKey = "message"
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func developmentConfig() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return cfg
}

// L returns the global logger.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

// Replace swaps the global logger and returns a func restoring the previous one.
func Replace(l *zap.Logger) func() {
	prev := log
	log = l
	return func() { log = prev }
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
