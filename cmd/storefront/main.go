// Command storefront is the entry point for the storefront API server
// and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/craftline/storefront/database/migrations" // register migrations
)

func main() {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "E-commerce storefront API",
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		migrateRollbackCmd(),
		migrateStatusCmd(),
		seedCmd(),
		routeListCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
