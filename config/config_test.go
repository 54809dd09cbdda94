package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeper-dungeons/config"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Addr)
	assert.Equal(t, "data/deeper-dungeons.db", cfg.DatabaseURL)
	assert.Equal(t, "data/images", cfg.ImageDir)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, 500*time.Millisecond, cfg.ShutdownDelay)
	assert.Equal(t, 30*time.Second, cfg.ImageFetchTimeout)
	assert.Equal(t, 16<<20, cfg.BodyLimit)
	assert.Empty(t, cfg.AccessToken)
	assert.Empty(t, cfg.ImageBucket)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DD_ADDR", "127.0.0.1:9000")
	t.Setenv("DD_DATABASE_URL", "postgres://dd:dd@localhost/dd")
	t.Setenv("DD_SHUTDOWN_DELAY", "2s")
	t.Setenv("DD_IMAGE_BUCKET", "portraits")

	cfg, err := config.Parse()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "postgres://dd:dd@localhost/dd", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Second, cfg.ShutdownDelay)
	assert.Equal(t, "portraits", cfg.ImageBucket)
}

func TestParseRejectsBadDuration(t *testing.T) {
	t.Setenv("DD_SHUTDOWN_DELAY", "soon")

	_, err := config.Parse()
	assert.Error(t, err)
}
