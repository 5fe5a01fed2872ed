package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orbitwatch/neox/cmd/neox/commands"
	"github.com/orbitwatch/neox/config"
	"github.com/orbitwatch/neox/logger"
)

var rootCmd = &cobra.Command{
	Use:   "neox",
	Short: "neox - Near-Earth object catalog explorer",
	Long: `neox - Explore near-Earth objects and their close approaches.

neox loads the NASA/JPL small-body catalog and close-approach dataset,
links them in memory, and answers filtered queries over the result.

Available commands:
  inspect - Look up a single NEO by designation or name
  query   - Filter close approaches and render or export the results
  config  - Manage neox configuration
  version - Show version information

Examples:
  neox inspect --pdes 433                  # Show Eros
  neox inspect --name Halley --approaches  # Show Halley with its approaches
  neox query --date 2020-01-01             # Approaches on a single day
  neox query --hazardous --max-distance 0.05 --limit 5
  neox query --start-date 2020-01-01 --outfile results.csv`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		// Theme comes from config when available; logging must still work
		// when config loading fails
		if cfg, err := config.Load(); err == nil && cfg.Log.Theme != "" {
			logger.SetTheme(cfg.Log.Theme)
		}

		if err := logger.Initialize(verbosity, false); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().String("neofile", "", "Path to the NEO catalog CSV (overrides config)")
	rootCmd.PersistentFlags().String("cadfile", "", "Path to the close-approach JSON (overrides config)")

	// Add commands
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.QueryCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
