package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// getCmd shows a single car from the local mirror.
var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single car by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		client := newClient()
		if err := client.Reload(cmd.Context()); err != nil {
			return err
		}
		car, ok := client.FindByID(id)
		if !ok {
			fmt.Printf("No car with id %d\n", id)
			return nil
		}

		fmt.Printf("%s (%s)\n", car.Name, car.Category)
		fmt.Printf("  id:       %d\n", car.ID)
		fmt.Printf("  quantity: %d\n", car.Quantity)
		fmt.Printf("  price:    %.2f\n", car.Price)
		if car.Year != nil {
			fmt.Printf("  year:     %d\n", *car.Year)
		}
		if car.Mileage != nil {
			fmt.Printf("  mileage:  %d\n", *car.Mileage)
		}
		if car.Color != "" {
			fmt.Printf("  color:    %s\n", car.Color)
		}
		if car.Vin != "" {
			fmt.Printf("  vin:      %s\n", car.Vin)
		}
		if car.Description != "" {
			fmt.Printf("  %s\n", car.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
