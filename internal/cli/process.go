package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"fnolagent/internal/model"
	"fnolagent/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outputDir   string
	timeout     time.Duration
	noCache     bool
	llmProvider string
	llmModel    string
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Process a single FNOL document and route the claim",
	Long: `Process runs one First Notice of Loss document through the full
intake pipeline:
- Read the document (.txt or .pdf)
- Extract structured claim fields via the configured LLM provider
- Validate the eight mandatory fields
- Apply the routing policy
- Write the decision to the output directory

Example:
  fnolagent process claim.txt
  fnolagent process claim.pdf --provider openai --model gpt-4o-mini
  fnolagent process claim.txt --output-dir ./results --no-cache`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&outputDir, "output-dir", "output", "output directory for results")
	processCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "timeout for processing")
	processCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction cache (force fresh API call)")
	processCmd.Flags().StringVar(&llmProvider, "provider", "gemini", "LLM provider (gemini, openai, anthropic, ollama)")
	processCmd.Flags().StringVar(&llmModel, "model", "", "LLM model name (provider default if empty)")
}

func runProcess(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", file)
		fmt.Fprintf(os.Stderr, "Provider: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize pipeline: %w", err)
	}

	result, err := p.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process failed: %w", err)
	}

	p.Store().RenderResult(result)
	return nil
}

// buildConfig assembles the runtime configuration from defaults, flags,
// and environment variables.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Dir = outputDir
	cfg.Output.Verbose = verbose

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	} else {
		cfg.LLM.Model = defaultModel(cfg.LLM.Provider)
	}

	if err := resolveCredentials(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultModel picks a provider-appropriate model when none is given
func defaultModel(provider string) string {
	switch provider {
	case "openai":
		return "gpt-4o-mini"
	case "anthropic", "claude":
		return "claude-3-5-haiku-latest"
	case "ollama":
		return "llama3.2"
	default:
		return "gemini-2.5-flash"
	}
}

// resolveCredentials pulls API keys from the environment
func resolveCredentials(cfg *model.Config) error {
	if cfg.LLM.APIKey != "" {
		return nil
	}

	switch cfg.LLM.Provider {
	case "gemini", "google":
		cfg.LLM.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("GOOGLE_API_KEY")
		}
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	return nil
}
