package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fineprint-dev/fineprint/internal/cli"
)

func prefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage user preferences",
		Long:  `Show and update the preference weights that shape risk scoring.`,
	}

	cmd.AddCommand(showPrefsCmd())
	cmd.AddCommand(setPrefsCmd())

	return cmd
}

func showPrefsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active preferences",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefs, err := loadPreferences(ctx, store)
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Preferences"))
			fmt.Printf("  Privacy weight:       %.2f\n", prefs.PrivacyWeight)
			fmt.Printf("  Legal rights weight:  %.2f\n", prefs.LegalRightsWeight)
			fmt.Printf("  Convenience weight:   %.2f\n", prefs.ConvenienceWeight)
			fmt.Printf("  Risk threshold:       %d\n", prefs.RiskThreshold)
			fmt.Printf("  Notifications:        %t\n", prefs.EnableNotifications)
			return nil
		},
	}
}

func setPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update stored preferences",
		Long: `Update one or more preference values. Unset flags keep their current value.

Examples:
  # Care more about losing legal rights
  fineprint prefs set --legal-rights 0.6 --privacy 0.3 --convenience 0.1

  # Raise the alert threshold
  fineprint prefs set --threshold 70`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			prefs, err := store.GetPreferences(ctx)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("privacy") {
				prefs.PrivacyWeight, _ = cmd.Flags().GetFloat64("privacy")
			}
			if cmd.Flags().Changed("legal-rights") {
				prefs.LegalRightsWeight, _ = cmd.Flags().GetFloat64("legal-rights")
			}
			if cmd.Flags().Changed("convenience") {
				prefs.ConvenienceWeight, _ = cmd.Flags().GetFloat64("convenience")
			}
			if cmd.Flags().Changed("threshold") {
				prefs.RiskThreshold, _ = cmd.Flags().GetInt("threshold")
			}
			if cmd.Flags().Changed("notifications") {
				prefs.EnableNotifications, _ = cmd.Flags().GetBool("notifications")
			}

			if err := prefs.Validate(); err != nil {
				return fmt.Errorf("invalid preferences: %w", err)
			}

			if err := store.SavePreferences(ctx, prefs); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Preferences saved"))
			return nil
		},
	}

	cmd.Flags().Float64("privacy", 0, "weight for privacy concerns (0-1)")
	cmd.Flags().Float64("legal-rights", 0, "weight for legal rights concerns (0-1)")
	cmd.Flags().Float64("convenience", 0, "weight for convenience concerns (0-1)")
	cmd.Flags().Int("threshold", 0, "risk score that should trigger a warning (0-100)")
	cmd.Flags().Bool("notifications", true, "enable alerts for high-risk documents")

	return cmd
}
