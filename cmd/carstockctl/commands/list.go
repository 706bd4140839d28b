package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/abgdnv/carstock/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	// List flags
	searchTerm     string
	categoryFilter string
)

// listCmd loads the catalog and renders the projection for the given filter.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cars, optionally filtered by search term and category",
	Long: `List the car catalog sorted by name.

The search term matches case-insensitively against name, VIN and color;
the category filter matches exactly. Both filters run against the local
mirror, not the server.

Examples:
  carstockctl list
  carstockctl list --search red
  carstockctl list --category SUV --search toyota`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		if err := client.Reload(cmd.Context()); err != nil {
			return err
		}
		projection := catalog.Project(client.Snapshot(), searchTerm, categoryFilter)
		if len(projection) == 0 {
			fmt.Println("No cars found")
			return nil
		}
		printCars(projection)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Case-insensitive term matched against name, VIN and color")
	listCmd.Flags().StringVarP(&categoryFilter, "category", "c", "", "Exact category to filter by")
}

// printCars renders cars as an aligned table.
func printCars(cars []catalog.Car) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tQTY\tPRICE\tYEAR\tCOLOR\tSTOCK")
	for _, car := range cars {
		year := "-"
		if car.Year != nil {
			year = fmt.Sprintf("%d", *car.Year)
		}
		stock := "out of stock"
		if car.InStock() {
			stock = "in stock"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\t%s\t%s\n",
			car.ID, car.Name, car.Category, car.Quantity, car.Price, year, car.Color, stock)
	}
	_ = w.Flush()
}
