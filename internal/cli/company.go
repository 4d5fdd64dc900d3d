package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgdnlp/facatura/internal/apperr"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
)

func newCompanyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage the companies that issue invoices",
	}
	cmd.AddCommand(
		newCompanyCreateCmd(a),
		newCompanyGetCmd(a),
		newCompanyUpdateCmd(a),
		newCompanyListCmd(a),
		newCompanyDeleteCmd(a),
	)
	return cmd
}

// companyFlags registers the per-field flags shared by create and update.
func companyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("name", "", "legal name")
	flags.String("address", "", "street address")
	flags.String("city", "", "city")
	flags.String("county", "", "county (judet)")
	flags.String("postal-code", "", "postal code")
	flags.String("country", "", "country")
	flags.String("registration-number", "", "trade register number (J12/345/2020)")
	flags.String("fiscal-code", "", "fiscal code (CUI)")
	flags.String("vat-number", "", "VAT number (ROnnnnnnn), empty for non-payers")
	flags.String("bank-name", "", "bank printed on invoices when no account is registered")
	flags.String("bank-account", "", "account printed on invoices when no account is registered")
	flags.String("email", "", "contact email")
	flags.String("phone", "", "contact phone")
	flags.String("website", "", "website")
	flags.String("logo-path", "", "path to a logo image for rendered invoices")
}

func newCompanyCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register an issuing company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			get := func(name string) string {
				v, _ := cmd.Flags().GetString(name)
				return v
			}
			company, err := a.parties.CreateCompany(cmd.Context(), partydomain.CreateCompanyRequest{
				Name:               get("name"),
				Address:            get("address"),
				City:               get("city"),
				County:             get("county"),
				PostalCode:         get("postal-code"),
				Country:            get("country"),
				RegistrationNumber: get("registration-number"),
				FiscalCode:         get("fiscal-code"),
				VATNumber:          get("vat-number"),
				BankName:           get("bank-name"),
				BankAccount:        get("bank-account"),
				Email:              get("email"),
				Phone:              get("phone"),
				Website:            get("website"),
				LogoPath:           get("logo-path"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Company %d created\n", company.ID)
			return nil
		},
	}
	companyFlags(cmd)
	return cmd
}

func newCompanyGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one company by id or fiscal code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				company partydomain.Company
				err     error
			)
			if code, _ := cmd.Flags().GetString("fiscal-code"); code != "" {
				company, err = a.parties.GetCompanyByFiscalCode(cmd.Context(), code)
			} else if len(args) == 1 {
				var id int64
				if id, err = parseID(args[0]); err == nil {
					company, err = a.parties.GetCompany(cmd.Context(), id)
				}
			} else {
				err = apperr.Validation("an id or --fiscal-code is required")
			}
			if err != nil {
				return err
			}
			printCompany(cmd.OutOrStdout(), company)
			return nil
		},
	}
	cmd.Flags().String("fiscal-code", "", "look up by fiscal code instead of id")
	return cmd
}

func newCompanyUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change company fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			company, err := a.parties.UpdateCompany(cmd.Context(), id, partydomain.UpdateCompanyRequest{
				Name:               changedString(cmd, "name"),
				Address:            changedString(cmd, "address"),
				City:               changedString(cmd, "city"),
				County:             changedString(cmd, "county"),
				PostalCode:         changedString(cmd, "postal-code"),
				Country:            changedString(cmd, "country"),
				RegistrationNumber: changedString(cmd, "registration-number"),
				FiscalCode:         changedString(cmd, "fiscal-code"),
				VATNumber:          changedString(cmd, "vat-number"),
				BankName:           changedString(cmd, "bank-name"),
				BankAccount:        changedString(cmd, "bank-account"),
				Email:              changedString(cmd, "email"),
				Phone:              changedString(cmd, "phone"),
				Website:            changedString(cmd, "website"),
				LogoPath:           changedString(cmd, "logo-path"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Company %d updated\n", company.ID)
			return nil
		},
	}
	companyFlags(cmd)
	return cmd
}

func newCompanyListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			city, _ := cmd.Flags().GetString("city")
			county, _ := cmd.Flags().GetString("county")
			country, _ := cmd.Flags().GetString("country")
			companies, err := a.parties.ListCompanies(cmd.Context(), partydomain.ListPartyRequest{
				City:    city,
				County:  county,
				Country: country,
			})
			if err != nil {
				return err
			}
			printCompanyList(cmd.OutOrStdout(), companies)
			return nil
		},
	}
	cmd.Flags().String("city", "", "only companies in this city")
	cmd.Flags().String("county", "", "only companies in this county")
	cmd.Flags().String("country", "", "only companies in this country")
	return cmd
}

func newCompanyDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company and its bank accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.parties.DeleteCompany(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Company %d deleted\n", id)
			return nil
		},
	}
}
