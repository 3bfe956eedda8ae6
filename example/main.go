package main

import (
	"fmt"
	"log"

	"github.com/alexflint/go-arg"
)

// Args are the command-line flags. Non-zero flags override the config file.
type Args struct {
	Config          string  `arg:"--config" help:"path to a TOML config file"`
	Iterations      int     `arg:"--iterations" help:"number of random operations"`
	KeyRange        int     `arg:"--key_range" help:"keys are drawn from [0, key_range)"`
	InsertRatio     float64 `arg:"--insert_ratio" help:"probability that an operation is an insert"`
	Seed            int64   `arg:"--seed" help:"random seed, 0 picks one from the clock"`
	ExpandThreshold float64 `arg:"--expand_threshold"`
	ShrinkThreshold float64 `arg:"--shrink_threshold"`
	LogLevel        string  `arg:"--log_level"`
	LogFile         string  `arg:"--log_file"`
}

func (a Args) apply(cfg *Config) {
	if a.Iterations != 0 {
		cfg.Iterations = a.Iterations
	}
	if a.KeyRange != 0 {
		cfg.KeyRange = a.KeyRange
	}
	if a.InsertRatio != 0 {
		cfg.InsertRatio = a.InsertRatio
	}
	if a.Seed != 0 {
		cfg.Seed = a.Seed
	}
	if a.ExpandThreshold != 0 {
		cfg.ExpandThreshold = a.ExpandThreshold
	}
	if a.ShrinkThreshold != 0 {
		cfg.ShrinkThreshold = a.ShrinkThreshold
	}
	if a.LogLevel != "" {
		cfg.Log.Level = a.LogLevel
	}
	if a.LogFile != "" {
		cfg.Log.Filename = a.LogFile
	}
}

func main() {
	var args Args
	arg.MustParse(&args)

	cfg, err := loadConfig(args.Config)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	args.apply(&cfg)

	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	tbl, _, err := run(cfg, logger)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	fmt.Println(tbl.Count(), tbl.Capacity())
}
