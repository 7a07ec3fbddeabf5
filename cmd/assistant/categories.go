package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

func newCategoriesCmd(setup func(*cobra.Command) (*env, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the catalog's categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			cats, err := e.store.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			for _, c := range cats {
				cmd.Println(c)
			}
			return nil
		},
	}
}

func newAddProductCmd(setup func(*cobra.Command) (*env, error)) *cobra.Command {
	var p catalogdomain.Product

	cmd := &cobra.Command{
		Use:   "add-product <title>",
		Short: "List a new product in the catalog",
		Long: `Adds a product to the store's catalog. With the default in-process
memory store the product only lives for this run; point --store-addr at a
running store or use --backend sqlite to keep it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			p.Title = args[0]
			created, err := e.store.CreateProduct(cmd.Context(), p)
			if err != nil {
				return fmt.Errorf("add product: %w", err)
			}
			cmd.Printf("Listed product %d: %s\n", created.ID, created.Title)
			return nil
		},
	}
	cmd.Flags().Float64Var(&p.Price, "price", 0, "price in naira")
	cmd.Flags().StringSliceVar(&p.Categories, "category", nil, "category, repeatable")
	cmd.Flags().StringVar(&p.Merchant, "merchant", "", "selling merchant")
	cmd.Flags().StringVar(&p.Image, "image", "", "image path or url")
	cmd.Flags().StringVar(&p.Description, "description", "", "short description")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
