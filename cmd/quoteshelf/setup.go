package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quoteworks/quoteshelf/internal/database"
)

// newSetupCommand builds the provisioning command.
func newSetupCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the database and its tables",
		Long: `Creates the configured database on the server and the four tables the
store uses (author, quote, comment, metadata). Existing objects are left
alone unless --overwrite is given.`,
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

			log.Info().
				Str("database", settings.DBName).
				Strs("tables", database.TableNames()).
				Msg("Setup complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "drop and recreate the database and tables (destructive)")
	return cmd
}
