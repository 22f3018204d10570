package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var v *viper.Viper

func init() {
	v = viper.New()

	// Set default values
	v.SetDefault("server.port", 28080)
	v.SetDefault("store.path", "confhub.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("announcement.schedule", "*/5 * * * *")
	v.SetDefault("mail.from", "noreply@confhub.local")

	// Environment variables
	v.AutomaticEnv()
	v.BindEnv("server.port", "PORT")
	v.BindEnv("store.path", "STORE_PATH")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("nats.url", "NATS_URL")
	v.BindEnv("mail.smtp_addr", "SMTP_ADDR")
	v.BindEnv("mail.from", "MAIL_FROM")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Look for config in the following paths
	configPaths := []string{
		".",
		"$HOME/.confhub",
		"/etc/confhub",
	}

	for _, path := range configPaths {
		expandedPath := os.ExpandEnv(path)
		v.AddConfigPath(expandedPath)
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			panic(fmt.Sprintf("Fatal error reading config file: %s", err))
		}
		// Config file not found; ignore error and use defaults
	}
}

// GetServerPort returns the configured server port
func GetServerPort() int {
	return v.GetInt("server.port")
}

// GetStorePath returns the SQLite database path
func GetStorePath() string {
	return v.GetString("store.path")
}

// GetRedisAddr returns the Redis address
func GetRedisAddr() string {
	return v.GetString("redis.addr")
}

// GetRedisPassword returns the Redis password
func GetRedisPassword() string {
	return v.GetString("redis.password")
}

// GetRedisDB returns the Redis database number
func GetRedisDB() int {
	return v.GetInt("redis.db")
}

// GetNATSURL returns the NATS server URL
func GetNATSURL() string {
	return v.GetString("nats.url")
}

// GetAnnouncementSchedule returns the cron schedule for the announcement job
func GetAnnouncementSchedule() string {
	return v.GetString("announcement.schedule")
}

// GetSMTPAddr returns the SMTP server address, empty when mail delivery
// should only be logged
func GetSMTPAddr() string {
	return v.GetString("mail.smtp_addr")
}

// GetMailFrom returns the sender address for outgoing mail
func GetMailFrom() string {
	return v.GetString("mail.from")
}
