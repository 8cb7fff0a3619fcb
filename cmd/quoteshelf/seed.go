package main

import (
	"github.com/spf13/cobra"

	"github.com/quoteworks/quoteshelf/internal/database"
)

// newSeedCommand builds the sample-data loader.
func newSeedCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in sample quotes",
		Long: `Ensures the database and tables exist, loads the built-in sample quotes,
authors and comments, and rebuilds the metadata pick lists (all_authors,
all_tags). A shelf that already holds the pick lists is left untouched;
use --overwrite to start from a clean schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := initRuntime()
			if err != nil {
				return err
			}

			db := database.New(dbConfig(settings))
			if err := db.PingServer(); err != nil {
				return err
			}
			if err := db.CreateDatabase(overwrite); err != nil {
				return err
			}
			if err := db.CreateTables(overwrite); err != nil {
				return err
			}
			return database.Seed(db)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "drop and recreate the schema before seeding (destructive)")
	return cmd
}
