/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package common

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/spf13/viper"
)

// PrintSplash displays the BaSyx Go API ASCII art logo to the console.
// This function is typically called during application startup to provide
// visual branding and confirm the service is starting.
func PrintSplash() {
	log.Printf(`
	██████╗  █████╗ ███████╗██╗   ██╗██╗  ██╗     ██████╗  ██████╗ 
	██╔══██╗██╔══██╗██╔════╝╚██╗ ██╔╝╚██╗██╔╝    ██╔════╝ ██╔═══██╗
	██████╔╝███████║███████╗ ╚████╔╝  ╚███╔╝     ██║  ███╗██║   ██║
	██╔══██╗██╔══██║╚════██║  ╚██╔╝   ██╔██╗     ██║   ██║██║   ██║
	██████╔╝██║  ██║███████║   ██║   ██╔╝ ██╗    ╚██████╔╝╚██████╔╝
	╚═════╝ ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝     ╚═════╝  ╚═════╝ 
																
	█████╗ ██████╗ ██╗                                            
	██╔══██╗██╔══██╗██║                                            
	███████║██████╔╝██║                                            
	██╔══██║██╔═══╝ ██║                                            
	██║  ██║██║     ██║                                            
	╚═╝  ╚═╝╚═╝     ╚═╝                                            
	`)
}

// Config represents the complete configuration of the Thing Description import service.
// It combines server settings, CORS policy, OIDC authentication, import behaviour,
// the storage backend and the optional archive and notification targets.
type Config struct {
	Server     ServerConfig  `mapstructure:"server" json:"server"`   // HTTP server configuration
	CorsConfig CorsConfig    `mapstructure:"cors" json:"cors"`       // CORS policy configuration
	OIDC       OIDCConfig    `mapstructure:"oidc" json:"oidc"`       // OpenID Connect authentication
	Import     ImportConfig  `mapstructure:"import" json:"import"`   // Importer behaviour
	Storage    StorageConfig `mapstructure:"storage" json:"storage"` // Import record storage
	Archive    ArchiveConfig `mapstructure:"archive" json:"archive"` // Source document archive
	Events     EventsConfig  `mapstructure:"events" json:"events"`   // Import notifications
}

// ServerConfig contains HTTP server specific configuration.
type ServerConfig struct {
	Host        string `mapstructure:"host" json:"host"`               // Listen address (default: 0.0.0.0)
	Port        int    `mapstructure:"port" json:"port"`               // HTTP server port (default: 5080)
	ContextPath string `mapstructure:"contextPath" json:"contextPath"` // Base path for all endpoints
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// CorsConfig contains Cross-Origin Resource Sharing policy settings.
type CorsConfig struct {
	AllowedOrigins   []string `mapstructure:"allowedOrigins" json:"allowedOrigins"`
	AllowedMethods   []string `mapstructure:"allowedMethods" json:"allowedMethods"`
	AllowedHeaders   []string `mapstructure:"allowedHeaders" json:"allowedHeaders"`
	AllowCredentials bool     `mapstructure:"allowCredentials" json:"allowCredentials"`
}

// OIDCConfig contains the bearer token verification settings for write endpoints.
type OIDCConfig struct {
	Enabled  bool     `mapstructure:"enabled" json:"enabled"`
	Issuer   string   `mapstructure:"issuer" json:"issuer"`
	Audience string   `mapstructure:"audience" json:"audience"`
	Scopes   []string `mapstructure:"scopes" json:"scopes"`
}

// ImportConfig controls how Thing Descriptions are converted.
type ImportConfig struct {
	Kind               string `mapstructure:"kind" json:"kind"`                             // Instance or Template
	AttachMode         string `mapstructure:"attachMode" json:"attachMode"`                 // staged or incremental
	Parallel           bool   `mapstructure:"parallel" json:"parallel"`                     // Build top-level sections concurrently
	SchemaPath         string `mapstructure:"schemaPath" json:"schemaPath"`                 // Optional JSON Schema for validation
	MaxDocumentBytes   int64  `mapstructure:"maxDocumentBytes" json:"maxDocumentBytes"`     // Upload size limit
	StrictVerification bool   `mapstructure:"strictVerification" json:"strictVerification"` // Reject metamodel violations
}

// StorageConfig selects and configures the import record store.
type StorageConfig struct {
	Backend  string         `mapstructure:"backend" json:"backend"` // inmemory, postgres or mongodb
	Postgres PostgresConfig `mapstructure:"postgres" json:"postgres"`
	MongoDB  MongoDBConfig  `mapstructure:"mongodb" json:"mongodb"`
}

// PostgresConfig contains PostgreSQL connection and pool settings.
type PostgresConfig struct {
	Host                   string `mapstructure:"host" json:"host"`                                     // Database host address
	Port                   int    `mapstructure:"port" json:"port"`                                     // Database port (default: 5432)
	User                   string `mapstructure:"user" json:"user"`                                     // Database username
	Password               string `mapstructure:"password" json:"password"`                             // Database password
	DBName                 string `mapstructure:"dbname" json:"dbname"`                                 // Database name
	MaxOpenConnections     int    `mapstructure:"maxOpenConnections" json:"maxOpenConnections"`         // Maximum open connections
	MaxIdleConnections     int    `mapstructure:"maxIdleConnections" json:"maxIdleConnections"`         // Maximum idle connections
	ConnMaxLifetimeMinutes int    `mapstructure:"connMaxLifetimeMinutes" json:"connMaxLifetimeMinutes"` // Connection lifetime
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return "postgres://" + p.User + ":" + p.Password + "@" + p.Host + ":" + strconv.Itoa(p.Port) + "/" + p.DBName + "?sslmode=disable"
}

// MongoDBConfig contains MongoDB connection settings.
type MongoDBConfig struct {
	URI            string `mapstructure:"uri" json:"uri"`
	Database       string `mapstructure:"database" json:"database"`
	Collection     string `mapstructure:"collection" json:"collection"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds" json:"timeoutSeconds"`
}

// ArchiveConfig configures where uploaded source documents are kept.
type ArchiveConfig struct {
	S3 S3Config `mapstructure:"s3" json:"s3"`
}

// S3Config configures the S3 archive. An empty bucket disables archiving.
type S3Config struct {
	Bucket       string `mapstructure:"bucket" json:"bucket"`
	Prefix       string `mapstructure:"prefix" json:"prefix"`
	Region       string `mapstructure:"region" json:"region"`
	Endpoint     string `mapstructure:"endpoint" json:"endpoint"`
	AccessKey    string `mapstructure:"accessKey" json:"accessKey"`
	SecretKey    string `mapstructure:"secretKey" json:"secretKey"`
	UsePathStyle bool   `mapstructure:"usePathStyle" json:"usePathStyle"`
}

// EventsConfig configures import notifications.
type EventsConfig struct {
	NATS NATSConfig `mapstructure:"nats" json:"nats"`
}

// NATSConfig configures the NATS publisher. An empty URL disables publishing.
type NATSConfig struct {
	URL     string `mapstructure:"url" json:"url"`
	Subject string `mapstructure:"subject" json:"subject"`
}

// LoadConfig loads the configuration from a YAML file, environment variables and defaults.
//
// Environment variables use underscore notation (e.g., SERVER_PORT for server.port).
//
// Parameters:
//   - configPath: Path to the YAML configuration file. If empty, only environment
//     variables and defaults will be used.
//
// Returns:
//   - *Config: Loaded configuration structure
//   - error: Error if configuration loading fails
//
// Example:
//
//	config, err := LoadConfig("config/tdimport.yaml")
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		log.Printf("📁 Loading config from file: %s", configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Println("📁 No config file provided, loading from environment variables only")
	}

	// Override config with environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	return cfg, nil
}

// setDefaults configures default values that let the service run locally
// with the in-memory store and no external dependencies.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5080)
	v.SetDefault("server.contextPath", "")

	// CORS defaults
	v.SetDefault("cors.allowedOrigins", []string{"*"})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"*"})
	v.SetDefault("cors.allowCredentials", true)

	v.SetDefault("oidc.enabled", false)
	v.SetDefault("oidc.issuer", "http://localhost:8080/realms/basyx")
	v.SetDefault("oidc.audience", "tdimport-service")

	// Import defaults
	v.SetDefault("import.kind", "Instance")
	v.SetDefault("import.attachMode", "staged")
	v.SetDefault("import.parallel", false)
	v.SetDefault("import.schemaPath", "")
	v.SetDefault("import.maxDocumentBytes", 4<<20)
	v.SetDefault("import.strictVerification", false)

	// Storage defaults
	v.SetDefault("storage.backend", "inmemory")
	v.SetDefault("storage.postgres.host", "db")
	v.SetDefault("storage.postgres.port", 5432)
	v.SetDefault("storage.postgres.user", "admin")
	v.SetDefault("storage.postgres.password", "admin123")
	v.SetDefault("storage.postgres.dbname", "basyxTestDB")
	v.SetDefault("storage.postgres.maxOpenConnections", 50)
	v.SetDefault("storage.postgres.maxIdleConnections", 50)
	v.SetDefault("storage.postgres.connMaxLifetimeMinutes", 5)
	v.SetDefault("storage.mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("storage.mongodb.database", "basyx")
	v.SetDefault("storage.mongodb.collection", "tdimports")
	v.SetDefault("storage.mongodb.timeoutSeconds", 10)

	v.SetDefault("archive.s3.bucket", "")
	v.SetDefault("archive.s3.prefix", "thing-descriptions/")
	v.SetDefault("archive.s3.region", "eu-central-1")

	v.SetDefault("events.nats.url", "")
	v.SetDefault("events.nats.subject", "basyx.tdimport.imported")
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Backend {
	case "inmemory", "postgres", "mongodb":
	default:
		return fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
	switch cfg.Import.AttachMode {
	case "staged", "incremental":
	default:
		return fmt.Errorf("unsupported import attach mode %q", cfg.Import.AttachMode)
	}
	if cfg.Import.Kind != "Instance" && cfg.Import.Kind != "Template" {
		return fmt.Errorf("unsupported import kind %q", cfg.Import.Kind)
	}
	return nil
}

// PrintConfiguration prints the current configuration to the console with sensitive data redacted.
//
// Parameters:
//   - cfg: Configuration structure to print
//
// The output is pretty-printed JSON. Database credentials, the MongoDB URI and
// the S3 keys are replaced with "****".
func PrintConfiguration(cfg *Config) {
	// Create a copy of the config to avoid modifying the original
	cfgCopy := *cfg

	if cfg.Storage.Postgres.Host != "" {
		cfgCopy.Storage.Postgres.Host = "****"
		cfgCopy.Storage.Postgres.User = "****"
		cfgCopy.Storage.Postgres.Password = "****"
	}
	if cfg.Storage.MongoDB.URI != "" {
		cfgCopy.Storage.MongoDB.URI = "****"
	}
	if cfg.Archive.S3.AccessKey != "" {
		cfgCopy.Archive.S3.AccessKey = "****"
	}
	if cfg.Archive.S3.SecretKey != "" {
		cfgCopy.Archive.S3.SecretKey = "****"
	}

	// Convert to JSON for pretty printing
	configJSON, err := json.MarshalIndent(cfgCopy, "", "  ")
	if err != nil {
		log.Printf("Unable to marshal configuration to JSON: %v", err)
		return
	}

	log.Printf("📜 Loaded configuration:\n%s", string(configJSON))
}

// AddCors configures Cross-Origin Resource Sharing (CORS) middleware for the router.
//
// Parameters:
//   - r: Chi router to configure with CORS middleware
//   - config: Configuration containing CORS policy settings
func AddCors(r *chi.Mux, config *Config) {
	c := cors.New(cors.Options{
		AllowedOrigins:   config.CorsConfig.AllowedOrigins,
		AllowedMethods:   config.CorsConfig.AllowedMethods,
		AllowedHeaders:   config.CorsConfig.AllowedHeaders,
		AllowCredentials: config.CorsConfig.AllowCredentials,
	})
	r.Use(c.Handler)
}
