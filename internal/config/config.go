package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Upload
		Vocabulary
		User
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Upload struct {
		Dir             string
		CleanupEnabled  bool
		CleanupSchedule string // Cron format: "0 * * * *" = hourly
		MaxAge          time.Duration
	}
	Vocabulary struct {
		WordCountLimit     int // Number of hits for frequent/infrequent words
		DefaultLetterLimit int // Minimum word length when none is given
	}
	User struct {
		Username string // The provisioned user the API serves
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("upload_dir", DefaultUploadDir)
	v.SetDefault("upload_cleanup_enabled", false)
	v.SetDefault("upload_cleanup_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("upload_max_age", "1h")
	v.SetDefault("word_count_limit", DefaultWordCountLimit)
	v.SetDefault("default_letter_limit", DefaultLetterLimit)
	v.SetDefault("default_username", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Upload: Upload{
			Dir:             v.GetString("UPLOAD_DIR"),
			CleanupEnabled:  v.GetBool("UPLOAD_CLEANUP_ENABLED"),
			CleanupSchedule: v.GetString("UPLOAD_CLEANUP_SCHEDULE"),
			MaxAge:          v.GetDuration("UPLOAD_MAX_AGE"),
		},
		Vocabulary: Vocabulary{
			WordCountLimit:     v.GetInt("WORD_COUNT_LIMIT"),
			DefaultLetterLimit: v.GetInt("DEFAULT_LETTER_LIMIT"),
		},
		User: User{
			Username: v.GetString("DEFAULT_USERNAME"),
		},
	}
}
