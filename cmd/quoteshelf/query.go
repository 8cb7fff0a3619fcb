package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quoteworks/quoteshelf/internal/model"
	"github.com/quoteworks/quoteshelf/internal/render"
)

// newQueryCommand builds the one-shot query runner.
func newQueryCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query <operation> [value]",
		Short: "Run one named query operation and print the result",
		Long: `Runs a single query operation against the store and prints the result.

Operations: ` + strings.Join(model.Operations(), ", ") + `

An unknown operation prints an empty result and exits zero.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db := requireStore()
			queries := model.New(db)

			value := ""
			if len(args) > 1 {
				value = args[1]
			}

			res, err := queries.Run(args[0], value)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode result: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Print(render.Result(args[0], res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw rows as JSON")
	return cmd
}
