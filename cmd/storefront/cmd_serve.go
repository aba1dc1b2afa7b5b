package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/craftline/storefront/internal/server"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.New()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Start(ctx)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print every registered route",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := server.New()
			if err != nil {
				return err
			}

			for _, route := range srv.Router().Routes() {
				cmd.Printf("%-7s %-40s %s\n", route.Method, route.Path, route.Name)
			}
			return nil
		},
	}
}
