package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreDynamoDB, cfg.Store.Driver)
	assert.Equal(t, 20, cfg.Feed.DefaultLimit)
	assert.Equal(t, 100, cfg.Feed.MaxLimit)
	assert.True(t, cfg.Feed.ExcludeOwnPostings)
	assert.Equal(t, 5*time.Minute, cfg.S3.PresignTTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("FEED_EXCLUDE_OWN_POSTINGS", "false")
	t.Setenv("FEED_DEFAULT_LIMIT", "10")
	t.Setenv("DYNAMODB_TABLE_PREFIX", "staging-")
	t.Setenv("AUTH_TOKEN_TTL", "1h")

	cfg, err := Load(newViper(t))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.False(t, cfg.Feed.ExcludeOwnPostings)
	assert.Equal(t, 10, cfg.Feed.DefaultLimit)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "staging-", cfg.DynamoDB.TablePrefix)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := Load(newViper(t))
	assert.Error(t, err)
}

func TestLoadRejectsDefaultAboveMax(t *testing.T) {
	t.Setenv("FEED_DEFAULT_LIMIT", "50")
	t.Setenv("FEED_MAX_LIMIT", "25")

	_, err := Load(newViper(t))
	assert.Error(t, err)
}
