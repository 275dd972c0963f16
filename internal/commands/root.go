package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "spendlens",
		Short:   "Bank statement analytics for the spending dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
