package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared variant. Both start as
// no-ops so library code can log before InitLogger runs; InitLogger swaps in
// the real logger.
var (
	Log  = zap.NewNop()
	SLog = zap.NewNop().Sugar()
)

func InitLogger() {
	var config zap.Config

	if os.Getenv("APP_ENV") == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.OutputPaths = []string{"stdout"}

	logger, err := config.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
