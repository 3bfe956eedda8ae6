package main

import (
	"math/rand"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/theflywheel/ohash"
)

// Report tallies what a run did to the table
type Report struct {
	Inserts int
	Deletes int // deletes that removed an entry
	Misses  int // deletes of absent keys
}

// run performs cfg.Iterations random inserts and deletes on a fresh table
func run(cfg Config, logger *zap.Logger) (*ohash.Table, Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, Report{}, err
	}

	tbl, err := ohash.NewWithOptions(ohash.Options{
		ExpandThreshold: cfg.ExpandThreshold,
		ShrinkThreshold: cfg.ShrinkThreshold,
		Logger:          logger,
	})
	if err != nil {
		return nil, Report{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("starting run",
		zap.Int("iterations", cfg.Iterations),
		zap.Int("key_range", cfg.KeyRange),
		zap.Int64("seed", seed))

	var report Report
	for i := 0; i < cfg.Iterations; i++ {
		key := strconv.Itoa(rng.Intn(cfg.KeyRange))
		chance := rng.Float64()

		if chance >= 1-cfg.InsertRatio {
			tbl.Insert(ohash.NewEntry(key))
			report.Inserts++
			continue
		}

		if tbl.Contains(key) {
			report.Deletes++
		} else {
			report.Misses++
		}
		tbl.Delete(ohash.NewEntry(key))
	}

	stats := tbl.Stats()
	logger.Info("run complete",
		zap.Int("inserts", report.Inserts),
		zap.Int("deletes", report.Deletes),
		zap.Int("misses", report.Misses),
		zap.Int("count", stats.Count),
		zap.Int("capacity", stats.Capacity),
		zap.Int("tombstones", stats.Tombstones),
		zap.Uint64("expansions", stats.Expansions),
		zap.Uint64("shrinks", stats.Shrinks))

	return tbl, report, nil
}
