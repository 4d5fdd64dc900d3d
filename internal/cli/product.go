package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	productdomain "github.com/bgdnlp/facatura/internal/product/domain"
)

func newProductCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the catalog of billable products and services",
	}
	cmd.AddCommand(
		newProductCreateCmd(a),
		newProductGetCmd(a),
		newProductUpdateCmd(a),
		newProductListCmd(a),
		newProductDeleteCmd(a),
	)
	return cmd
}

func productFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("name", "", "catalog name, copied onto invoice lines")
	flags.String("description", "", "longer description, not printed on invoices")
	flags.String("unit", "", "measuring unit (buc, ora, luna, kg)")
	flags.String("price", "", "unit price")
	flags.String("currency", "", "price currency (RON, EUR, USD, GBP)")
	flags.String("vat-rate", "", "VAT percentage (0-100)")
	flags.Bool("service", false, "mark as a service rather than a good")
}

func newProductCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			get := func(name string) string {
				v, _ := cmd.Flags().GetString(name)
				return v
			}
			price, err := parseDecimal("price", get("price"))
			if err != nil {
				return err
			}
			vatRate, err := changedDecimal(cmd, "vat-rate")
			if err != nil {
				return err
			}
			isService, _ := cmd.Flags().GetBool("service")
			product, err := a.products.Create(cmd.Context(), productdomain.CreateProductRequest{
				Name:        get("name"),
				Description: get("description"),
				Unit:        get("unit"),
				UnitPrice:   price,
				Currency:    get("currency"),
				VATRate:     vatRate,
				IsService:   isService,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %d created\n", product.ID)
			return nil
		},
	}
	productFlags(cmd)
	return cmd
}

func newProductGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, err := a.products.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProduct(cmd.OutOrStdout(), product)
			return nil
		},
	}
}

func newProductUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change product fields (issued invoices keep their copies)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			price, err := changedDecimal(cmd, "price")
			if err != nil {
				return err
			}
			vatRate, err := changedDecimal(cmd, "vat-rate")
			if err != nil {
				return err
			}
			product, err := a.products.Update(cmd.Context(), id, productdomain.UpdateProductRequest{
				Name:        changedString(cmd, "name"),
				Description: changedString(cmd, "description"),
				Unit:        changedString(cmd, "unit"),
				UnitPrice:   price,
				Currency:    changedString(cmd, "currency"),
				VATRate:     vatRate,
				IsService:   changedBool(cmd, "service"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %d updated\n", product.ID)
			return nil
		},
	}
	productFlags(cmd)
	return cmd
}

func newProductListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			products, err := a.products.List(cmd.Context(), productdomain.ListProductsRequest{
				Query:     query,
				IsService: changedBool(cmd, "service"),
			})
			if err != nil {
				return err
			}
			printProductList(cmd.OutOrStdout(), products)
			return nil
		},
	}
	cmd.Flags().String("query", "", "only products whose name matches")
	cmd.Flags().Bool("service", false, "only services (--service) or only goods (--service=false)")
	return cmd
}

func newProductDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.products.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %d deleted\n", id)
			return nil
		},
	}
}
