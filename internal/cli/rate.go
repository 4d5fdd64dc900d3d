package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgdnlp/facatura/internal/apperr"
	exchangedomain "github.com/bgdnlp/facatura/internal/exchange/domain"
)

func newRateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Record the exchange rates non-RON invoices are converted with",
	}
	cmd.AddCommand(
		newRateAddCmd(a),
		newRateListCmd(a),
		newRateDeleteCmd(a),
	)
	return cmd
}

func newRateAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one currency quote for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, _ := cmd.Flags().GetString("currency")
			rawRate, _ := cmd.Flags().GetString("rate")
			rawDate, _ := cmd.Flags().GetString("date")

			rate, err := parseDecimal("rate", rawRate)
			if err != nil {
				return err
			}
			if rawDate == "" {
				return apperr.Validation("--date is required")
			}
			day, err := parseDate(rawDate)
			if err != nil {
				return err
			}

			added, err := a.rates.Add(cmd.Context(), exchangedomain.AddRateRequest{
				CurrencyCode: currency,
				Rate:         rate,
				Date:         day,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rate %d recorded: 1 %s = %s RON on %s\n",
				added.ID, added.CurrencyCode, added.Rate.String(), rawDate)
			return nil
		},
	}
	cmd.Flags().String("currency", "", "currency code (EUR, USD, GBP)")
	cmd.Flags().String("rate", "", "RON per one unit of the currency")
	cmd.Flags().String("date", "", "quote date, YYYY-MM-DD")
	return cmd
}

func newRateListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, _ := cmd.Flags().GetString("currency")
			rates, err := a.rates.List(cmd.Context(), exchangedomain.ListRatesRequest{
				CurrencyCode: currency,
			})
			if err != nil {
				return err
			}
			printRateList(cmd.OutOrStdout(), rates)
			return nil
		},
	}
	cmd.Flags().String("currency", "", "only this currency")
	return cmd
}

func newRateDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded rate (issued invoices keep their snapshot)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.rates.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rate %d deleted\n", id)
			return nil
		},
	}
}
