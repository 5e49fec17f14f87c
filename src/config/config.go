package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory" or a file path for SQLite
	}
	Catalog struct {
		// File optionally points at a YAML catalog document; empty means the
		// built-in catalog content is used.
		File string
	}
	Assessment struct {
		// TieEpsilon is the confidence gap under which the top two archetype
		// matches are flagged as ties. Zero means the built-in default.
		TieEpsilon float64 `mapstructure:"tie_epsilon"`
		// EscalationConfidence is the match confidence at which a persona's
		// base severity escalates one tier. Zero means the built-in default.
		EscalationConfidence float64 `mapstructure:"escalation_confidence"`
	}
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from config.yaml and environment variables.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config") // for running from locations like tests

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("catalog.file", "")
	viper.SetDefault("assessment.tie_epsilon", 0.0)
	viper.SetDefault("assessment.escalation_confidence", 0.0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		AppConfig.Database.DSN = dsn
		log.Printf("INFO: [Config] Database DSN overridden by DATABASE_DSN.")
	}
	if file := os.Getenv("CATALOG_FILE"); file != "" {
		AppConfig.Catalog.File = file
		log.Printf("INFO: [Config] Catalog file overridden by CATALOG_FILE: %s", file)
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
