package config

import (
	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	// FixedSeed возвращает сид генератора, если включен режим воспроизводимых спинов
	FixedSeed() (seed1, seed2 uint64, ok bool)
	HistoryLimit() int
	StatsWindowSize() int
	StatsCheckPeriod() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type LoggerConfig interface {
	Level() string
	Development() bool
}
