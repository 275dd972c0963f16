package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/analytics"
	"github.com/spendlens-dev/spendlens/internal/statement"
)

func newSummaryCommand() *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "summary <statement>",
		Short: "Aggregate a statement export and print the dashboard summary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := statement.Load(args[0])
			if err != nil {
				return err
			}

			summary, err := analytics.BuildExpenseSummary(txns, topN)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding summary: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top", analytics.DefaultTopN, "number of top expenses to include (1-50)")

	return cmd
}
