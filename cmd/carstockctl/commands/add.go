package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// addCmd creates a new car and refreshes the mirror.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new car to the catalog",
	Long: `Add a new car to the catalog.

Example:
  carstockctl add --name "Test Car" --category Sedan --quantity 1 --price 1000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		if err := client.Reload(cmd.Context()); err != nil {
			return err
		}
		created, err := client.Create(cmd.Context(), carForm(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("Added car %d: %s\n", created.ID, created.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	registerFormFlags(addCmd)
}
