package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config drives one harness run
type Config struct {
	Iterations      int     `toml:"iterations"`
	KeyRange        int     `toml:"key-range"`
	InsertRatio     float64 `toml:"insert-ratio"`
	Seed            int64   `toml:"seed"`
	ExpandThreshold float64 `toml:"expand-threshold"`
	ShrinkThreshold float64 `toml:"shrink-threshold"`

	Log LogConfig `toml:"log"`
}

// LogConfig describes where and how the harness logs
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

func defaultConfig() Config {
	return Config{
		Iterations:  1001,
		KeyRange:    1000,
		InsertRatio: 0.5,
		Log: LogConfig{
			Level:   "info",
			Format:  "console",
			MaxSize: 64,
		},
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", cfg.Iterations)
	}
	if cfg.KeyRange <= 0 {
		return fmt.Errorf("key range must be positive, got %d", cfg.KeyRange)
	}
	if cfg.InsertRatio < 0 || cfg.InsertRatio > 1 {
		return fmt.Errorf("insert ratio must lie in [0, 1], got %v", cfg.InsertRatio)
	}
	return nil
}

func (c LogConfig) getLevel() (zap.AtomicLevel, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return zap.NewAtomicLevelAt(level), nil
}

func (c LogConfig) getEncoder() (zapcore.Encoder, error) {
	switch c.Format {
	case "", "console":
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), nil
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", c.Format)
	}
}

func (c LogConfig) getSyncer() zapcore.WriteSyncer {
	if c.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.Filename,
		MaxSize:    c.MaxSize,
		MaxAge:     c.MaxDays,
		MaxBackups: c.MaxBackups,
	})
}

// newLogger builds the harness logger from c
func newLogger(c LogConfig) (*zap.Logger, error) {
	level, err := c.getLevel()
	if err != nil {
		return nil, err
	}
	encoder, err := c.getEncoder()
	if err != nil {
		return nil, err
	}
	return zap.New(zapcore.NewCore(encoder, c.getSyncer(), level)), nil
}
