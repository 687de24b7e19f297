package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fnolagent/internal/model"
)

const timestampLayout = "20060102_150405"

// Store persists claim results and batch summaries as JSON artifacts
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given output directory
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "output"
	}
	return &Store{dir: dir}
}

// Dir returns the output directory
func (s *Store) Dir() string {
	return s.dir
}

// SaveResult writes one claim result to claim_<timestamp>_<slug>.json and
// returns the written path. The slug keeps concurrent same-second writes
// from colliding.
func (s *Store) SaveResult(result *model.ClaimResult) (string, error) {
	name := fmt.Sprintf("claim_%s_%s.json",
		result.ProcessedAt.Format(timestampLayout),
		slugify(result.DocumentName))
	return s.write(name, result)
}

// SaveSummary writes a batch summary to batch_summary_<timestamp>.json
func (s *Store) SaveSummary(summary *model.BatchSummary) (string, error) {
	name := fmt.Sprintf("batch_summary_%s.json",
		summary.ProcessedAt.Format(timestampLayout))
	return s.write(name, summary)
}

func (s *Store) write(name string, v any) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// slugify turns a document name into a filesystem-safe fragment
func slugify(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	slug := strings.Trim(b.String(), "_")
	if slug == "" {
		slug = "document"
	}
	if len(slug) > 60 {
		slug = slug[:60]
	}
	return slug
}

// RenderResult prints a human-readable view of one claim result to stderr
func (s *Store) RenderResult(result *model.ClaimResult) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Claim Routing Decision\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Document:   %s\n", result.DocumentName)
	fmt.Fprintf(os.Stderr, "  Route:      %s\n", result.Route)
	fmt.Fprintf(os.Stderr, "  Reasoning:  %s\n", result.Reasoning)
	fmt.Fprintf(os.Stderr, "  Damage:     $%.2f\n", result.EstimatedDamage)

	if len(result.MissingFields) > 0 {
		fields := make([]string, len(result.MissingFields))
		for i, f := range result.MissingFields {
			fields[i] = string(f)
		}
		fmt.Fprintf(os.Stderr, "  Missing:    %s\n", strings.Join(fields, ", "))
	}
	if len(result.FraudIndicators) > 0 {
		fmt.Fprintf(os.Stderr, "  Fraud:      %s\n", strings.Join(result.FraudIndicators, ", "))
	}
	fmt.Fprintf(os.Stderr, "\n")
}

// RenderBatchSummary prints batch statistics with a route distribution
// chart to stderr
func (s *Store) RenderBatchSummary(summary *model.BatchSummary) {
	stats := summary.Statistics

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", stats.Total)
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", stats.Successful)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", stats.Failed)
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Route distribution:\n")

	for _, route := range model.Routes() {
		count := stats.Routes[route]
		bar := strings.Repeat("█", count)
		fmt.Fprintf(os.Stderr, "    %-17s %3d %s\n", route, count, bar)
	}

	fmt.Fprintf(os.Stderr, "\n")
	for _, outcome := range summary.Results {
		if outcome.Status == model.StatusFailed {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %s\n", outcome.Filename, outcome.Error)
		} else {
			fmt.Fprintf(os.Stderr, "  ✓ %s → %s\n", outcome.Filename, *outcome.Route)
		}
	}
	fmt.Fprintf(os.Stderr, "\n")
}
