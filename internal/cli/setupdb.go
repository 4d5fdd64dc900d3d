package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgdnlp/facatura/internal/seed"
)

func newSetupDBCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "setup-db",
		Short: "Create or upgrade the database and seed the default exchange rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Migrations already ran when the database was opened; all that is
			// left is the one-time reference data.
			if err := seed.EnsureDefaultRates(a.db, a.clock); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", a.cfg.DBPath)
			return nil
		},
	}
}
