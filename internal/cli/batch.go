package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"fnolagent/internal/pipeline"
	"fnolagent/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Process a directory of FNOL documents in parallel",
	Long: `Batch processes every .txt and .pdf document in a directory:
- Documents are processed concurrently with a configurable worker count
- Provider API calls are rate limited across workers
- A failed document is recorded and never aborts the batch
- Individual results and an aggregate summary land in the output directory

Example:
  fnolagent batch ./data/sample_fnols
  fnolagent batch ./claims --concurrency 8 --output-dir ./results
  fnolagent batch ./claims --provider openai --timeout 15m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 4, "number of concurrent workers")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared with the process command
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "output", "output directory for results")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction cache (force fresh API calls)")
	batchCmd.Flags().StringVar(&llmProvider, "provider", "gemini", "LLM provider (gemini, openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "model", "", "LLM model name (provider default if empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  FNOL Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input dir:    %s\n", dir)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", cfg.Output.Dir)
	fmt.Fprintf(os.Stderr, "  Provider:     %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	p, err := pipeline.NewPipeline(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	processor := worker.NewBatchProcessor(p, concurrency,
		cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)

	fmt.Fprintf(os.Stderr, "⚙️  Processing documents with %d workers...\n", concurrency)

	summary, err := processor.ProcessDirectory(ctx, dir)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	summaryPath, err := p.Store().SaveSummary(summary)
	if err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	p.Store().RenderBatchSummary(summary)
	fmt.Fprintf(os.Stderr, "  Summary:   %s\n", summaryPath)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
