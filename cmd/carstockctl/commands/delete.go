package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// deleteCmd removes a car and refreshes the mirror. The delete is hard and
// irreversible.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a car from the catalog",
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
		if err := client.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted car %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
