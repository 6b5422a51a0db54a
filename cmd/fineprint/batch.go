package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/fineprint-dev/fineprint/internal/cli"
	"github.com/fineprint-dev/fineprint/internal/engine"
	"github.com/fineprint-dev/fineprint/internal/model"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Analyze several documents in one run",
		Long: `Analyze up to 10 documents and print a report for each.

Examples:
  # Analyze every saved policy in a directory
  fineprint batch policies/*.txt

  # Machine-readable output
  fineprint batch terms.txt privacy.txt --json`,
		Args: cobra.RangeArgs(1, engine.MaxBatchSize),
		RunE: runBatch,
	}

	cmd.Flags().Bool("json", false, "emit the raw analysis results as JSON")
	cmd.Flags().Bool("no-save", false, "do not record these analyses in history")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	asJSON, _ := cmd.Flags().GetBool("json")
	noSave, _ := cmd.Flags().GetBool("no-save")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	prefs, err := loadPreferences(ctx, store)
	if err != nil {
		return err
	}

	analyzer, err := engine.New()
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetDescription("Analyzing documents"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	results := make(map[string]*model.AnalysisResult, len(args))
	for _, path := range args {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", path, readErr)
		}
		if len(data) > engine.MaxTextLength {
			return fmt.Errorf("%s is too long: %d characters (limit %d)", path, len(data), engine.MaxTextLength)
		}

		result, analyzeErr := analyzer.Analyze(string(data), engine.Options{Preferences: prefs})
		if analyzeErr != nil {
			result = engine.FallbackAnalysis()
		}
		results[path] = result

		if !noSave && !result.Metadata.Fallback {
			record := &model.AnalysisRecord{
				ID:        uuid.NewString(),
				Source:    "batch",
				RiskScore: result.RiskScore,
				RiskLevel: result.RiskLevel,
				Result:    result,
				CreatedAt: time.Now().UTC(),
			}
			if saveErr := store.SaveAnalysis(ctx, record); saveErr != nil {
				return fmt.Errorf("failed to save analysis for %s: %w", path, saveErr)
			}
		}

		_ = bar.Add(1)
	}

	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	for _, path := range args {
		fmt.Println(cli.FormatTitle(path))
		fmt.Println(cli.RenderReport(results[path]))
		fmt.Println()
	}
	return nil
}
