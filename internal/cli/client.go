package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bgdnlp/facatura/internal/apperr"
	partydomain "github.com/bgdnlp/facatura/internal/party/domain"
)

func newClientCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage the clients invoices are issued to",
	}
	cmd.AddCommand(
		newClientCreateCmd(a),
		newClientGetCmd(a),
		newClientUpdateCmd(a),
		newClientListCmd(a),
		newClientDeleteCmd(a),
	)
	return cmd
}

func clientFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("name", "", "legal name")
	flags.String("address", "", "street address")
	flags.String("city", "", "city")
	flags.String("county", "", "county (judet)")
	flags.String("postal-code", "", "postal code")
	flags.String("country", "", "country")
	flags.String("registration-number", "", "trade register number, if any")
	flags.String("fiscal-code", "", "fiscal code (CUI)")
	flags.String("vat-number", "", "VAT number (ROnnnnnnn), empty for non-payers")
	flags.String("bank-name", "", "client's bank")
	flags.String("bank-account", "", "client's account")
	flags.String("email", "", "contact email")
	flags.String("phone", "", "contact phone")
	flags.String("contact-person", "", "person to address invoices to")
	flags.String("notes", "", "free-form notes")
}

func newClientCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			get := func(name string) string {
				v, _ := cmd.Flags().GetString(name)
				return v
			}
			client, err := a.parties.CreateClient(cmd.Context(), partydomain.CreateClientRequest{
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
				ContactPerson:      get("contact-person"),
				Notes:              get("notes"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d created\n", client.ID)
			return nil
		},
	}
	clientFlags(cmd)
	return cmd
}

func newClientGetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Show one client by id or fiscal code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				client partydomain.Client
				err    error
			)
			if code, _ := cmd.Flags().GetString("fiscal-code"); code != "" {
				client, err = a.parties.GetClientByFiscalCode(cmd.Context(), code)
			} else if len(args) == 1 {
				var id int64
				if id, err = parseID(args[0]); err == nil {
					client, err = a.parties.GetClient(cmd.Context(), id)
				}
			} else {
				err = apperr.Validation("an id or --fiscal-code is required")
			}
			if err != nil {
				return err
			}
			printClient(cmd.OutOrStdout(), client)
			return nil
		},
	}
	cmd.Flags().String("fiscal-code", "", "look up by fiscal code instead of id")
	return cmd
}

func newClientUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change client fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.parties.UpdateClient(cmd.Context(), id, partydomain.UpdateClientRequest{
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
				ContactPerson:      changedString(cmd, "contact-person"),
				Notes:              changedString(cmd, "notes"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d updated\n", client.ID)
			return nil
		},
	}
	clientFlags(cmd)
	return cmd
}

func newClientListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			city, _ := cmd.Flags().GetString("city")
			county, _ := cmd.Flags().GetString("county")
			country, _ := cmd.Flags().GetString("country")
			clients, err := a.parties.ListClients(cmd.Context(), partydomain.ListPartyRequest{
				City:    city,
				County:  county,
				Country: country,
			})
			if err != nil {
				return err
			}
			printClientList(cmd.OutOrStdout(), clients)
			return nil
		},
	}
	cmd.Flags().String("city", "", "only clients in this city")
	cmd.Flags().String("county", "", "only clients in this county")
	cmd.Flags().String("country", "", "only clients in this country")
	return cmd
}

func newClientDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a client and its bank accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.parties.DeleteClient(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Client %d deleted\n", id)
			return nil
		},
	}
}
