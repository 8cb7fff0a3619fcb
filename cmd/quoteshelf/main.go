package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/quoteworks/quoteshelf/internal/config"
	"github.com/quoteworks/quoteshelf/internal/database"
	"github.com/quoteworks/quoteshelf/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	envFile   string
	logFile   string
	verbosity int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quoteshelf",
		Short: "Quoteshelf - browse a MySQL quotation store",
		Long: `Quoteshelf is a terminal browser for a MySQL store of quotes, authors,
comments and tag metadata. Run it without arguments for the interactive
browser; use 'setup' and 'seed' to provision a fresh database.`,
		RunE: runBrowse,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (rotating; empty logs to console only)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(newQueryCommand())
	rootCmd.AddCommand(newSetupCommand())
	rootCmd.AddCommand(newSeedCommand())

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("quoteshelf %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initRuntime loads the settings and applies the logging setup every
// database-touching command shares. The verbosity flag beats the configured
// log level; the --log-file flag beats the configured file.
func initRuntime() (*config.Settings, error) {
	settings, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	level := settings.LogLevel
	switch verbosity {
	case 0:
	case 1:
		level = "debug"
	default:
		level = "trace"
	}

	file := settings.LogFile
	if logFile != "" {
		file = logFile
	}
	logging.Apply(level, file)

	return settings, nil
}

func dbConfig(settings *config.Settings) database.Config {
	return database.Config{
		Host:     settings.DBHost,
		Port:     settings.DBPort,
		User:     settings.DBUser,
		Password: settings.DBPassword,
		Database: settings.DBName,
	}
}

// requireStore opens the database accessor and runs the startup checks: the
// server must answer and the database must exist. Both failures are fatal,
// there is nothing to browse without them.
func requireStore() *database.DB {
	settings, err := initRuntime()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	db := database.New(dbConfig(settings))
	if err := db.PingServer(); err != nil {
		log.Fatal().Err(err).Str("host", settings.DBHost).Int("port", settings.DBPort).Msg("Database server is unreachable, check your .env settings")
	}

	exists, err := db.DatabaseExists()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check database existence")
	}
	if !exists {
		log.Fatal().Str("database", settings.DBName).Msg("Database does not exist, run 'quoteshelf setup' first")
	}

	return db
}
