package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mytheresa/cookbook/app/graph"
	"github.com/mytheresa/cookbook/app/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL server",
	Long: `Start an HTTP server exposing the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - Health check at /healthz (GET)

Examples:
  # Serve on the default address against Postgres
  cookbook serve

  # Serve on a custom address with an in-memory store
  cookbook serve --addr :3000 --store memory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	repo, db, err := openRepository()
	if err != nil {
		return err
	}

	health := server.NewHealthHandler(nil)
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.Wrap(err, "database handle")
		}
		defer sqlDB.Close()
		health = server.NewHealthHandler(sqlDB)
	}

	schema, err := graph.NewSchema(repo, log)
	if err != nil {
		return errors.Wrap(err, "parse schema")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg.HTTPAddr, server.NewRouter(schema, health, log), log)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	bindFlag("http.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}
