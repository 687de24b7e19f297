package cli

import (
	"fmt"
	"os"

	"fnolagent/internal/sample"
	"github.com/spf13/cobra"
)

// samplesCmd represents the samples command
var samplesCmd = &cobra.Command{
	Use:   "samples [dir]",
	Short: "Generate sample FNOL documents for testing",
	Long: `Generate sample First Notice of Loss documents, one per routing
scenario: fast-track, specialist-queue, investigation, and manual-review
(both missing-fields and high-value variants).

Example:
  fnolagent samples
  fnolagent samples ./data/sample_fnols`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSamples,
}

func init() {
	rootCmd.AddCommand(samplesCmd)
}

func runSamples(cmd *cobra.Command, args []string) error {
	dir := "data/sample_fnols"
	if len(args) > 0 {
		dir = args[0]
	}

	paths, err := sample.Generate(dir)
	if err != nil {
		return fmt.Errorf("generate samples: %w", err)
	}

	for _, path := range paths {
		fmt.Fprintf(os.Stderr, "✓ Created: %s\n", path)
	}
	fmt.Fprintf(os.Stderr, "\n%d sample documents written to %s\n", len(paths), dir)

	fmt.Fprintf(os.Stderr, "\nExpected routing:\n")
	for _, doc := range sample.Documents() {
		fmt.Fprintf(os.Stderr, "  %-35s %s\n", doc.Filename, doc.Route)
	}

	fmt.Fprintf(os.Stderr, "\nNext: fnolagent batch %s\n", dir)
	return nil
}
