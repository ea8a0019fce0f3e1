package config

import (
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Audit
		Export
		Demo
		Log
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path   string
		LogSQL bool // Print every SQL statement through gorm's logger
	}
	Audit struct {
		Dir string // Empty disables auditing of add requests
	}
	Export struct {
		Path        string // Target file for the periodic export
		Format      string // "markdown" or "yaml"
		SyncEnabled bool
		Schedule    string // Cron format: "0 * * * *" = hourly
	}
	Demo struct {
		Enabled bool // Read-only mode: reject every write request
	}
	Log struct {
		File       string // Empty keeps logging on stderr only
		MaxSizeMB  int
		MaxBackups int
	}
)

// LoadDotEnv loads variables from a .env file into the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		log.Printf("Loaded environment from %s", path)
	}
	return nil
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_sql", false)
	v.SetDefault("audit_dir", "")
	v.SetDefault("export_path", "")
	v.SetDefault("export_format", "markdown")
	v.SetDefault("export_sync_enabled", false)
	v.SetDefault("export_sync_schedule", DefaultExportSchedule)
	v.SetDefault("demo_mode", false)
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 10)
	v.SetDefault("log_max_backups", 3)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:   v.GetString("DATABASE_PATH"),
			LogSQL: v.GetBool("DATABASE_LOG_SQL"),
		},
		Audit: Audit{
			Dir: v.GetString("AUDIT_DIR"),
		},
		Export: Export{
			Path:        v.GetString("EXPORT_PATH"),
			Format:      v.GetString("EXPORT_FORMAT"),
			SyncEnabled: v.GetBool("EXPORT_SYNC_ENABLED"),
			Schedule:    v.GetString("EXPORT_SYNC_SCHEDULE"),
		},
		Demo: Demo{
			Enabled: v.GetBool("DEMO_MODE"),
		},
		Log: Log{
			File:       v.GetString("LOG_FILE"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
		},
	}
}
