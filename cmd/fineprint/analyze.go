package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fineprint-dev/fineprint/internal/cli"
	"github.com/fineprint-dev/fineprint/internal/engine"
	"github.com/fineprint-dev/fineprint/internal/fetch"
	"github.com/fineprint-dev/fineprint/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a terms-of-service or privacy-policy document",
		Long: `Analyze a legal document for risky clauses and produce a risk report.

The document text comes from a file argument, from stdin when the argument
is "-" or omitted, or from a live page with --url.

Examples:
  # Analyze a saved document
  fineprint analyze terms.txt

  # Pipe text in
  pbpaste | fineprint analyze

  # Fetch and analyze a live policy page
  fineprint analyze --url https://example.com/terms

  # Machine-readable output
  fineprint analyze terms.txt --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().String("url", "", "fetch the document from a URL instead of a file")
	cmd.Flags().Bool("json", false, "emit the raw analysis result as JSON")
	cmd.Flags().Bool("no-cache", false, "skip the cached result for --url analyses")
	cmd.Flags().Bool("no-save", false, "do not record this analysis in history")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pageURL, _ := cmd.Flags().GetString("url")
	asJSON, _ := cmd.Flags().GetBool("json")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	noSave, _ := cmd.Flags().GetBool("no-save")

	if pageURL != "" && len(args) > 0 {
		return fmt.Errorf("cannot combine --url with a file argument")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	// Serve a fresh cached result instead of re-fetching the page.
	if pageURL != "" && !noCache {
		cached, cacheErr := store.GetCachedAnalysis(ctx, pageURL)
		if cacheErr != nil {
			return cacheErr
		}
		if cached != nil {
			slog.Debug("using cached analysis", "url", pageURL, "age", time.Since(cached.CreatedAt))
			return renderResult(cached.Result, asJSON)
		}
	}

	text, source, err := resolveText(ctx, args, pageURL)
	if err != nil {
		return err
	}
	if len(text) > engine.MaxTextLength {
		return fmt.Errorf("document is too long: %d characters (limit %d)", len(text), engine.MaxTextLength)
	}

	prefs, err := loadPreferences(ctx, store)
	if err != nil {
		return err
	}

	analyzer, err := engine.New()
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(text, engine.Options{URL: pageURL, Preferences: prefs})
	if err != nil {
		slog.Warn("analysis failed, serving fallback result", "error", err)
		result = engine.FallbackAnalysis()
	}

	if !noSave && !result.Metadata.Fallback {
		record := &model.AnalysisRecord{
			ID:        uuid.NewString(),
			URL:       pageURL,
			Source:    source,
			RiskScore: result.RiskScore,
			RiskLevel: result.RiskLevel,
			Result:    result,
			CreatedAt: time.Now().UTC(),
		}
		if saveErr := store.SaveAnalysis(ctx, record); saveErr != nil {
			slog.Warn("failed to save analysis", "error", saveErr)
		}
	}

	return renderResult(result, asJSON)
}

// resolveText loads the document body from the URL, file, or stdin.
func resolveText(ctx context.Context, args []string, pageURL string) (text, source string, err error) {
	if pageURL != "" {
		fetcher := fetch.New(nil)
		text, err = fetcher.Extract(ctx, pageURL)
		if err != nil {
			return "", "", fmt.Errorf("failed to fetch document: %w", err)
		}
		return text, "url", nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read document: %w", readErr)
		}
		return string(data), "file", nil
	}

	data, readErr := io.ReadAll(os.Stdin)
	if readErr != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", readErr)
	}
	return string(data), "stdin", nil
}

func renderResult(result *model.AnalysisResult, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}
	fmt.Println(cli.RenderReport(result))
	return nil
}
