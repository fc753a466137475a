package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tunisiaguide/internal/catalog"
)

// searchCommand prints the governorates matching a query, or all of them,
// with their average attraction rating.
func searchCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Searches governorates by name, Arabic name, capital or description",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.New()
			if err != nil {
				return fmt.Errorf("could not load catalog: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			if cmd.Flags().Changed("category") {
				_, _ = fmt.Fprintln(tw, "ATTRACTION\tTYPE\tGOVERNORATE\tRATING")
				for _, a := range cat.FilterAttractionsByCategory(category) {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\n", a.Name, a.Type, a.GovernorateName, a.Rating)
				}

				return tw.Flush() //nolint: wrapcheck
			}

			_, _ = fmt.Fprintln(tw, "ID\tNAME\tARABIC\tCAPITAL\tRATING")
			for _, g := range cat.SearchGovernorates(strings.Join(args, " ")) {
				rating := "-"
				if avg, ok := cat.AverageRating(g); ok {
					rating = fmt.Sprintf("%.1f", avg)
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", g.ID, g.Name, g.NameArabic, g.Capital, rating)
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}
	cmd.Flags().StringVar(&category, "category", "", `List attractions whose type contains this ("All" for every attraction)`)

	return cmd
}
