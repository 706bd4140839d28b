package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// setQuantityCmd adjusts the stock quantity of a car by re-submitting the
// cached record with the new quantity.
var setQuantityCmd = &cobra.Command{
	Use:   "set-quantity <id> <quantity>",
	Short: "Set the stock quantity of a car",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}
		quantity, err := strconv.ParseInt(args[1], 10, 32)
		if err != nil || quantity < 0 {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		client := newClient()
		if err := client.Reload(cmd.Context()); err != nil {
			return err
		}
		if _, ok := client.FindByID(id); !ok {
			fmt.Printf("No car with id %d\n", id)
			return nil
		}
		if err := client.SetQuantity(cmd.Context(), id, int32(quantity)); err != nil {
			return err
		}
		fmt.Printf("Quantity of car %d set to %d\n", id, quantity)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setQuantityCmd)
}
