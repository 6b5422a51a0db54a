package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fineprint-dev/fineprint/internal/engine"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the risk categories the analyzer detects",
		Long:  `Display every clause category the analyzer looks for, with its weight and severity notes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			analyzer, err := engine.New()
			if err != nil {
				return err
			}

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			// Header
			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("Category"),
				headerStyle.Render("Weight"),
				headerStyle.Render("Irreversible"),
				headerStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 24),
				strings.Repeat("-", 6),
				strings.Repeat("-", 12),
				strings.Repeat("-", 50))

			for _, info := range analyzer.Categories() {
				irreversible := ""
				if info.Irreversible {
					irreversible = "yes"
				}
				fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\n", info.Name, info.Weight, irreversible, info.Description)
			}

			return nil
		},
	}
}
