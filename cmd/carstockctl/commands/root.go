// Package commands wires the carstockctl subcommands. Every command works
// through the catalog client: mutate, reload the local mirror, then render
// from the refreshed snapshot.
package commands

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abgdnv/carstock/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	serverAddr string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "carstockctl",
	Short: "Operator CLI for the car inventory service",
	Long: `carstockctl drives the car inventory API the way the catalog view does:
it loads the full record set into a local mirror, filters it locally, and
refreshes the mirror wholesale after every mutation.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "http://localhost:3000", "Base URL of the inventory service")
}

// newClient builds a catalog client against the configured server address.
func newClient() *catalog.Client {
	return catalog.NewClient(serverAddr, &http.Client{Timeout: 15 * time.Second})
}
