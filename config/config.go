package config

import (
	"fmt"
	"strings"
	"time"

	"jobswipe_server/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port            string        `mapstructure:"port" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	Store    StoreConfig    `mapstructure:"store"`
	AWS      AWSConfig      `mapstructure:"aws"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	S3       S3Config       `mapstructure:"s3"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Feed     FeedConfig     `mapstructure:"feed"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Log      LogConfig      `mapstructure:"log"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=dynamodb memory"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

type DynamoDBConfig struct {
	// Endpoint overrides the service endpoint, e.g. DynamoDB Local.
	Endpoint    string `mapstructure:"endpoint"`
	TablePrefix string `mapstructure:"table_prefix"`
}

type S3Config struct {
	Bucket     string        `mapstructure:"bucket"`
	PresignTTL time.Duration `mapstructure:"presign_ttl"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type FeedConfig struct {
	DefaultLimit int `mapstructure:"default_limit" validate:"gte=0"`
	MaxLimit     int `mapstructure:"max_limit" validate:"gtefield=DefaultLimit"`
	// ExcludeOwnPostings must stay on in production; switching it off is only
	// meant for single-account manual testing.
	ExcludeOwnPostings bool `mapstructure:"exclude_own_postings"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// SetDefaults registers every key so that environment variables are picked up
// by Unmarshal even when no config file mentions them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("store.driver", StoreDynamoDB)
	v.SetDefault("aws.region", "")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.table_prefix", "")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.presign_ttl", 5*time.Minute)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("feed.default_limit", models.DefaultFeedLimit)
	v.SetDefault("feed.max_limit", models.MaxFeedLimit)
	v.SetDefault("feed.exclude_own_postings", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// BindEnv maps nested keys onto upper-cased, underscore separated variables:
// feed.exclude_own_postings <- FEED_EXCLUDE_OWN_POSTINGS. A .env file in the
// working directory is loaded first when present.
func BindEnv(v *viper.Viper) {
	_ = godotenv.Load()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
