// Package config loads the CLI settings from a dotenv file and the process
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

// Settings keys. Viper lowercases keys read from the env file, so these match
// both a ".env" entry (DB_HOST=...) and a real environment variable.
const (
	keyDBHost     = "db_host"
	keyDBPort     = "db_port"
	keyDBUser     = "db_user"
	keyDBPassword = "db_password"
	keyDBName     = "db_name"
	keyLogLevel   = "log_level"
	keyLogFile    = "log_file"
)

// Defaults for a local MySQL server.
const (
	DefaultDBHost   = "127.0.0.1"
	DefaultDBPort   = 3306
	DefaultDBUser   = "root"
	DefaultDBName   = "quoteshelf"
	DefaultLogLevel = "info"
)

// Settings holds everything the CLI needs to reach the database server and
// set up logging. Values are fixed once Load returns; nothing reads the
// environment afterwards.
type Settings struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	LogLevel   string
	LogFile    string
}

// Load reads settings from envFile (dotenv format) overridden by real
// environment variables. A missing env file is not an error; the defaults and
// the environment still apply.
func Load(envFile string) (*Settings, error) {
	v := viper.New()
	v.SetDefault(keyDBHost, DefaultDBHost)
	v.SetDefault(keyDBPort, DefaultDBPort)
	v.SetDefault(keyDBUser, DefaultDBUser)
	v.SetDefault(keyDBPassword, "")
	v.SetDefault(keyDBName, DefaultDBName)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyLogFile, "")

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
	}

	v.AutomaticEnv()

	settings := &Settings{
		DBHost:     v.GetString(keyDBHost),
		DBPort:     v.GetInt(keyDBPort),
		DBUser:     v.GetString(keyDBUser),
		DBPassword: v.GetString(keyDBPassword),
		DBName:     v.GetString(keyDBName),
		LogLevel:   v.GetString(keyLogLevel),
		LogFile:    v.GetString(keyLogFile),
	}

	if settings.DBHost == "" {
		return nil, fmt.Errorf("db_host must not be empty")
	}
	if settings.DBPort <= 0 || settings.DBPort > 65535 {
		return nil, fmt.Errorf("db_port %d is out of range", settings.DBPort)
	}
	if settings.DBName == "" {
		return nil, fmt.Errorf("db_name must not be empty")
	}

	return settings, nil
}
