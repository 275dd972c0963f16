package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spendlens-dev/spendlens/internal/statement"
)

func newExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <statement>",
		Short: "Normalize a statement export and write the canonical transaction table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txns, err := statement.Load(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			return statement.WriteTable(w, txns)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write CSV to file instead of stdout")

	return cmd
}
