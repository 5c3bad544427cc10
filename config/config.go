// Package config loads the service configuration from config.yaml, a local
// .env file and the process environment, in increasing precedence.
package config

import (
	"os"
	"strings"
	"time"

	"marketplace/internal/domain/constants"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"golang.org/x/crypto/bcrypt"
)

const dotEnvFile = ".env"

// searchDirs lets the binaries and package tests find config/config.yaml.
var searchDirs = []string{".", "config", "../config", "../../config"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// AutoMigrate runs GORM schema migration when the database connection starts.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	Pagination *PaginationConfig `json:"pagination" yaml:"pagination"`

	Order *OrderConfig `json:"order" yaml:"order"`

	Promotion *PromotionConfig `json:"promotion" yaml:"promotion"`

	SearchHistory *SearchHistoryConfig `json:"searchHistory" yaml:"searchHistory"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order code images
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Jobs holds the cron specs of the worker's scheduled jobs
	Jobs *JobsConfig `json:"jobs" yaml:"jobs"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost      int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL  time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int  `json:"minLength" yaml:"minLength"`
	RequireUppercase bool `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int  `json:"maxLength" yaml:"maxLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PaginationConfig defines page sizes for list endpoints
type PaginationConfig struct {
	// DefaultElementsPerPage applies when a request asks for 0 elements per page
	DefaultElementsPerPage int `json:"defaultElementsPerPage" yaml:"defaultElementsPerPage"`
	MaxElementsPerPage     int `json:"maxElementsPerPage" yaml:"maxElementsPerPage"`
}

// OrderConfig defines order placement settings
type OrderConfig struct {
	// CodeMaxAttempts bounds order code regeneration on collision
	CodeMaxAttempts int `json:"codeMaxAttempts" yaml:"codeMaxAttempts"`
}

// PromotionConfig defines voucher and coupon set limits
type PromotionConfig struct {
	// MaxItemsPerRequest caps how many items one create, add or subtract request
	// may touch. Request validation never lets more than 10000 through.
	MaxItemsPerRequest int `json:"maxItemsPerRequest" yaml:"maxItemsPerRequest"`
}

// SearchHistoryConfig defines how many recent searches are returned
type SearchHistoryConfig struct {
	Limit int `json:"limit" yaml:"limit"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// JobsConfig defines cron specs (with seconds) for worker jobs. Empty disables a job.
type JobsConfig struct {
	PromotionExpiry     string `json:"promotionExpiry" yaml:"promotionExpiry"`
	RefreshTokenCleanup string `json:"refreshTokenCleanup" yaml:"refreshTokenCleanup"`
}

// New loads and validates the configuration.
func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(dotEnvFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg := new(Config)
	if err := load(cfg, "config", searchDirs...); err != nil {
		return nil, err
	}
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv()
	}

	applyDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// validate rejects settings that would only fail later at request time.
func (cfg *Config) validate() error {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return errors.New("secretKey.access and secretKey.refresh are required")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return errors.New("access and refresh tokens must be signed with different keys")
	}

	if cost := cfg.Auth.BcryptCost; cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return errors.Errorf("auth.bcryptCost %d is outside [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.PubSub != nil {
		switch cfg.PubSub.Provider {
		case "", constants.PubSubProviderLocal, constants.PubSubProviderGoogle:
		default:
			return errors.Errorf("pubsub.provider %q is not one of local, google", cfg.PubSub.Provider)
		}
	}

	switch strings.ToLower(cfg.Env.Env) {
	case "", constants.EnvDevelop, constants.EnvStaging, constants.EnvProduction:
	default:
		return errors.Errorf("env.env %q is unknown", cfg.Env.Env)
	}

	return nil
}
