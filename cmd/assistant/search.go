package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	catalogdomain "github.com/dwikikusuma/naija-assistant/internal/catalog/domain"
)

func newSearchCmd(setup func(*cobra.Command) (*env, error)) *cobra.Command {
	var (
		category string
		minPrice float64
		maxPrice float64
		sortBy   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog",
		Long: `Matches the query against product titles, descriptions and categories.
An empty query lists the whole catalog. Filters combine.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			var query string
			if len(args) == 1 {
				query = args[0]
			}
			f := catalogdomain.Filter{Category: category, SortBy: catalogdomain.SortBy(sortBy)}
			if cmd.Flags().Changed("min-price") {
				f.MinPrice = &minPrice
			}
			if cmd.Flags().Changed("max-price") {
				f.MaxPrice = &maxPrice
			}

			products, err := e.store.SearchProducts(cmd.Context(), query, f)
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			if asJSON {
				data, err := json.MarshalIndent(products, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal products: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}
			printProducts(cmd, products)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "exact category")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum price, inclusive")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum price, inclusive")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "price-low, price-high or rating")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output results as JSON")
	return cmd
}

func printProducts(cmd *cobra.Command, products []catalogdomain.Product) {
	if len(products) == 0 {
		cmd.Println("No products found.")
		return
	}
	for _, p := range products {
		cmd.Printf("  [%d] %s - N%.2f", p.ID, p.Title, p.Price)
		if p.Merchant != "" {
			cmd.Printf(" (%s)", p.Merchant)
		}
		if p.Rating != nil {
			cmd.Printf(" *%.1f", *p.Rating)
		}
		cmd.Println()
	}
}
