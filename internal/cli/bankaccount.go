package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgdnlp/facatura/internal/apperr"
	bankdomain "github.com/bgdnlp/facatura/internal/bankaccount/domain"
)

func newBankAccountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank-account",
		Short: "Manage the bank accounts printed on invoices",
	}
	cmd.AddCommand(
		newBankAccountAddCmd(a),
		newBankAccountListCmd(a),
		newBankAccountSetDefaultCmd(a),
		newBankAccountDeleteCmd(a),
	)
	return cmd
}

func ownerFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("company", 0, "owning company id")
	cmd.Flags().Int64("client", 0, "owning client id")
}

// ownerFromFlags resolves the --company/--client pair into an owner reference.
func ownerFromFlags(cmd *cobra.Command) (string, int64, error) {
	companyID, _ := cmd.Flags().GetInt64("company")
	clientID, _ := cmd.Flags().GetInt64("client")
	switch {
	case companyID > 0 && clientID > 0:
		return "", 0, apperr.Validation("--company and --client are mutually exclusive")
	case companyID > 0:
		return bankdomain.OwnerCompany, companyID, nil
	case clientID > 0:
		return bankdomain.OwnerClient, clientID, nil
	default:
		return "", 0, apperr.Validation("--company or --client is required")
	}
}

func newBankAccountAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a bank account for a company or client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerType, ownerID, err := ownerFromFlags(cmd)
			if err != nil {
				return err
			}
			get := func(name string) string {
				v, _ := cmd.Flags().GetString(name)
				return v
			}
			isDefault, _ := cmd.Flags().GetBool("default")
			account, err := a.banks.Create(cmd.Context(), bankdomain.CreateBankAccountRequest{
				OwnerType:     ownerType,
				OwnerID:       ownerID,
				BankName:      get("bank-name"),
				AccountNumber: get("account-number"),
				SwiftCode:     get("swift"),
				IBAN:          get("iban"),
				Currency:      get("currency"),
				IsDefault:     isDefault,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bank account %d added\n", account.ID)
			return nil
		},
	}
	ownerFlags(cmd)
	cmd.Flags().String("bank-name", "", "bank name")
	cmd.Flags().String("account-number", "", "account number")
	cmd.Flags().String("swift", "", "SWIFT/BIC code")
	cmd.Flags().String("iban", "", "IBAN")
	cmd.Flags().String("currency", "", "account currency (RON, EUR, USD, GBP)")
	cmd.Flags().Bool("default", false, "print this account on invoices")
	return cmd
}

func newBankAccountListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an owner's bank accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerType, ownerID, err := ownerFromFlags(cmd)
			if err != nil {
				return err
			}
			accounts, err := a.banks.ListByOwner(cmd.Context(), ownerType, ownerID)
			if err != nil {
				return err
			}
			printBankAccountList(cmd.OutOrStdout(), accounts)
			return nil
		},
	}
	ownerFlags(cmd)
	return cmd
}

func newBankAccountSetDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <id>",
		Short: "Make an account the one printed on invoices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			account, err := a.banks.SetDefault(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bank account %d is now the default\n", account.ID)
			return nil
		},
	}
}

func newBankAccountDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.banks.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Bank account %d deleted\n", id)
			return nil
		},
	}
}
