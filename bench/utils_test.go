package ohash_test

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/theflywheel/ohash"
)

// BenchmarkMetrics represents metrics for a single benchmark
type BenchmarkMetrics struct {
	Name        string             `json:"name"`
	Category    string             `json:"category"`
	Operations  int                `json:"operations"`
	NsPerOp     float64            `json:"ns_per_op"`
	BytesPerOp  int                `json:"bytes_per_op,omitempty"`
	AllocsPerOp int                `json:"allocs_per_op,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// BenchmarkSummary represents all benchmark results
type BenchmarkSummary struct {
	Timestamp string             `json:"timestamp"`
	CommitID  string             `json:"commit_id"`
	Branch    string             `json:"branch"`
	GoVersion string             `json:"go_version"`
	Results   []BenchmarkMetrics `json:"results"`
}

// generateAlphanumeric creates a random alphanumeric string of given length
func generateAlphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			panic(err)
		}
		result[i] = charset[n.Int64()]
	}
	return string(result)
}

// getMemoryStats returns the current heap usage in megabytes
func getMemoryStats() map[string]float64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return map[string]float64{
		"alloc_mb": float64(m.Alloc) / (1024 * 1024),
		"sys_mb":   float64(m.Sys) / (1024 * 1024),
	}
}

// recordTableStats copies the table's bookkeeping into metrics
func recordTableStats(metrics *BenchmarkMetrics, tbl *ohash.Table) {
	stats := tbl.Stats()
	metrics.Metrics["final_count"] = float64(stats.Count)
	metrics.Metrics["final_capacity"] = float64(stats.Capacity)
	metrics.Metrics["load_factor"] = stats.LoadFactor
	metrics.Metrics["expansions"] = float64(stats.Expansions)
	metrics.Metrics["shrinks"] = float64(stats.Shrinks)
	for k, v := range getMemoryStats() {
		metrics.Metrics[k] = v
	}
}

// gitInfo reads the branch and short commit from the repository at repoRoot
func gitInfo(repoRoot string) (branch, commitID string) {
	branch, commitID = "dev", "local"

	gitHead, err := os.ReadFile(filepath.Join(repoRoot, ".git", "HEAD"))
	if err != nil {
		return branch, commitID
	}
	headContent := strings.TrimSpace(string(gitHead))
	if !strings.HasPrefix(headContent, "ref: ") {
		return branch, commitID
	}

	refPath := strings.TrimPrefix(headContent, "ref: ")
	branch = strings.TrimPrefix(refPath, "refs/heads/")
	if commitData, err := os.ReadFile(filepath.Join(repoRoot, ".git", refPath)); err == nil {
		commitID = strings.TrimSpace(string(commitData))
		if len(commitID) >= 8 {
			commitID = commitID[:8]
		}
	}
	return branch, commitID
}

// saveBenchmarkResult appends a benchmark result to benchmark_history/<resultsFile>
func saveBenchmarkResult(metrics BenchmarkMetrics, resultsFile string) error {
	currentDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// bench/ sits one level below the repository root
	repoRoot := filepath.Dir(currentDir)
	benchmarkDir := filepath.Join(repoRoot, "benchmark_history")
	if err := os.MkdirAll(benchmarkDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	branch, commitID := gitInfo(repoRoot)
	summary := BenchmarkSummary{
		Timestamp: time.Now().Format(time.RFC3339),
		CommitID:  commitID,
		Branch:    branch,
		GoVersion: runtime.Version(),
		Results:   []BenchmarkMetrics{metrics},
	}

	latestFile := filepath.Join(benchmarkDir, resultsFile)
	if existingData, err := os.ReadFile(latestFile); err == nil {
		var existingSummary BenchmarkSummary
		if err := json.Unmarshal(existingData, &existingSummary); err == nil {
			summary.Results = append(existingSummary.Results, metrics)
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}
	if err := os.WriteFile(latestFile, jsonData, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Printf("Benchmark results saved to: %s\n", latestFile)
	return nil
}
