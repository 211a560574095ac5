package utils

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

// InitLogger sets up structured JSON logging on stdout. Development mode
// (LOG_MODE=dev) switches to the console encoder for readable local output.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("LOG_MODE") == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stdout"}

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		panic(err)
	}
}
