package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/config"
)

func newInitCommand() *cobra.Command {
	var statementPath string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a spendlens workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, statementPath)
		},
	}

	cmd.Flags().StringVar(&statementPath, "statement", "", "default statement export path")

	return cmd
}

func runInit(cmd *cobra.Command, dir, statementPath string) error {
	if err := os.MkdirAll(filepath.Join(dir, "data"), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default()
	if statementPath != "" {
		cfg.Statement.Path = statementPath
	}
	if err := config.Save(filepath.Join(dir, config.DefaultFile), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized spendlens workspace at %s\n", dir)
	return nil
}
