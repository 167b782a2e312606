package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/mytheresa/cookbook/app/graph"
)

var (
	queryJSON      bool
	queryVariables string
	queryOperation string
)

var queryCmd = &cobra.Command{
	Use:     "query <document>",
	Aliases: []string{"graphql"},
	Short:   "Execute a GraphQL query or mutation",
	Long: `Execute a GraphQL document directly against the configured store
and print the response.

Pass "-" to read the document from stdin.

Examples:
  # List every category
  cookbook query '{ allCategories { id name } }'

  # Create an ingredient
  cookbook query 'mutation($c: Int!) { createIngredient(name: "Milk", notes: "2%", category: $c) { ok } }' \
    --variables '{"c": 1}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		document := args[0]
		if document == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "read stdin")
			}
			document = string(b)
		}

		var variables map[string]interface{}
		if queryVariables != "" {
			if err := json.Unmarshal([]byte(queryVariables), &variables); err != nil {
				return errors.Wrap(err, "parse --variables")
			}
		}

		repo, db, err := openRepository()
		if err != nil {
			return err
		}
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
		}

		schema, err := graph.NewSchema(repo, log)
		if err != nil {
			return errors.Wrap(err, "parse schema")
		}

		resp := schema.Exec(context.Background(), document, queryOperation, variables)
		out, err := json.Marshal(resp)
		if err != nil {
			return errors.Wrap(err, "encode response")
		}
		if !queryJSON {
			out = pretty.Color(pretty.Pretty(out), nil)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		if queryJSON {
			fmt.Fprintln(cmd.OutOrStdout())
		}

		if len(resp.Errors) > 0 {
			return errors.Errorf("query returned %d error(s)", len(resp.Errors))
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print compact JSON without colors")
	queryCmd.Flags().StringVar(&queryVariables, "variables", "", "Variables as a JSON object")
	queryCmd.Flags().StringVar(&queryOperation, "operation", "", "Operation name, for documents with several operations")
	rootCmd.AddCommand(queryCmd)
}
