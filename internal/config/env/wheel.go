package env

import (
	"errors"
	"fmt"
	"os"
	"roulette_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	defaultHistoryLimit     = 100
	defaultStatsWindowSize  = 3800
	defaultStatsCheckPeriod = 380
)

type wheelFile struct {
	Wheel wheelYAML `yaml:"wheel"`
}

type wheelYAML struct {
	FixedSeed struct {
		Enabled bool   `yaml:"enabled"`
		Seed1   uint64 `yaml:"seed1"`
		Seed2   uint64 `yaml:"seed2"`
	} `yaml:"fixed_seed"`
	HistoryLimit int `yaml:"history_limit"`
	Stats        struct {
		WindowSize  int `yaml:"window_size"`
		CheckPeriod int `yaml:"check_period"`
	} `yaml:"stats"`
}

type wheelConfig struct {
	fixedSeed        bool
	seed1, seed2     uint64
	historyLimit     int
	statsWindowSize  int
	statsCheckPeriod int
}

// NewWheelConfigFromYAML читает секцию wheel из yaml файла.
// Если файла нет - возвращаются значения по умолчанию
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ParseWheelConfig(nil)
		}
		return nil, fmt.Errorf("read wheel config: %w", err)
	}
	return ParseWheelConfig(data)
}

// ParseWheelConfig разбирает yaml и подставляет значения по умолчанию
func ParseWheelConfig(data []byte) (config.WheelConfig, error) {
	var f wheelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	cfg := &wheelConfig{
		fixedSeed:        f.Wheel.FixedSeed.Enabled,
		seed1:            f.Wheel.FixedSeed.Seed1,
		seed2:            f.Wheel.FixedSeed.Seed2,
		historyLimit:     f.Wheel.HistoryLimit,
		statsWindowSize:  f.Wheel.Stats.WindowSize,
		statsCheckPeriod: f.Wheel.Stats.CheckPeriod,
	}

	if cfg.historyLimit < 0 || cfg.statsWindowSize < 0 || cfg.statsCheckPeriod < 0 {
		return nil, errors.New("wheel config values must not be negative")
	}
	if cfg.historyLimit == 0 {
		cfg.historyLimit = defaultHistoryLimit
	}
	if cfg.statsWindowSize == 0 {
		cfg.statsWindowSize = defaultStatsWindowSize
	}
	if cfg.statsCheckPeriod == 0 {
		cfg.statsCheckPeriod = defaultStatsCheckPeriod
	}

	return cfg, nil
}

func (cfg *wheelConfig) FixedSeed() (uint64, uint64, bool) {
	return cfg.seed1, cfg.seed2, cfg.fixedSeed
}

func (cfg *wheelConfig) HistoryLimit() int {
	return cfg.historyLimit
}

func (cfg *wheelConfig) StatsWindowSize() int {
	return cfg.statsWindowSize
}

func (cfg *wheelConfig) StatsCheckPeriod() int {
	return cfg.statsCheckPeriod
}
