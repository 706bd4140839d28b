package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// updateCmd replaces a full car record and refreshes the mirror. Optional
// fields left off the command line are reset to their defaults, not kept.
var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a car record",
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
		updated, err := client.Update(cmd.Context(), id, carForm(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("Updated car %d: %s\n", updated.ID, updated.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	registerFormFlags(updateCmd)
}
