package env

import (
	"fmt"
	"os"
	"roulette_backend/internal/config"
	"strconv"
)

const (
	logLevelEnvName       = "LOG_LEVEL"
	logDevelopmentEnvName = "LOG_DEVELOPMENT"

	defaultLogLevel = "info"
)

type loggerConfig struct {
	level       string
	development bool
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = defaultLogLevel
	}

	var development bool
	if v := os.Getenv(logDevelopmentEnvName); len(v) != 0 {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logDevelopmentEnvName, err)
		}
		development = parsed
	}

	return &loggerConfig{
		level:       level,
		development: development,
	}, nil
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func (cfg *loggerConfig) Development() bool {
	return cfg.development
}
