package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fineprint-dev/fineprint/internal/cli"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage past analyses",
		Long:  `List and clear stored analysis results.`,
	}

	cmd.AddCommand(listHistoryCmd())
	cmd.AddCommand(clearHistoryCmd())

	return cmd
}

func listHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored analyses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.ListAnalyses(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list analyses: %w", err)
			}

			if len(records) == 0 {
				fmt.Println(cli.InfoStyle.Render("No analyses recorded yet. Run 'fineprint analyze' first."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("When"),
				headerStyle.Render("Score"),
				headerStyle.Render("Level"),
				headerStyle.Render("Source"),
				headerStyle.Render("URL"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 5),
				strings.Repeat("-", 6),
				strings.Repeat("-", 6),
				strings.Repeat("-", 40))

			for _, record := range records {
				url := record.URL
				if url == "" {
					url = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("(local document)")
				}
				fmt.Fprintf(w, "%s\t%.0f\t%s\t%s\t%s\n",
					record.CreatedAt.Local().Format("2006-01-02 15:04"),
					record.RiskScore,
					cli.LevelStyle(record.RiskLevel).Render(string(record.RiskLevel)),
					record.Source,
					url)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of analyses to show")

	return cmd
}

func clearHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all stored analyses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.ClearAnalyses(ctx); err != nil {
				return fmt.Errorf("failed to clear analyses: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Analysis history cleared"))
			return nil
		},
	}
}
