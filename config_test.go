package oyifa

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Oyifa", cfg.Name)
	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "abc123", cfg.Content.ProjectID)
	assert.Equal(t, "production", cfg.Content.Dataset)
	assert.Equal(t, "2024-01-01", cfg.Content.APIVersion)
	assert.True(t, cfg.Content.UseCDN)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout)
	assert.Empty(t, cfg.Content.Token)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "abc123")
	t.Setenv("SANITY_DATASET", "staging")
	t.Setenv("SANITY_API_VERSION", "2025-02-19")
	t.Setenv("SANITY_TOKEN", "sk-read")
	t.Setenv("SANITY_USE_CDN", "false")
	t.Setenv("SANITY_TIMEOUT", "3s")
	t.Setenv("SITE_NAME", "Oyifa Blog")
	t.Setenv("SITE_URL", "https://oyifa.com")
	t.Setenv("DEBUG", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Oyifa Blog", cfg.Name)
	assert.Equal(t, "https://oyifa.com", cfg.URL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "staging", cfg.Content.Dataset)
	assert.Equal(t, "2025-02-19", cfg.Content.APIVersion)
	assert.Equal(t, "sk-read", cfg.Content.Token)
	assert.False(t, cfg.Content.UseCDN)
	assert.Equal(t, 3*time.Second, cfg.Content.Timeout)
	assert.Equal(t, "https://abc123.api.sanity.io/v2025-02-19/data/query/staging", cfg.Content.QueryEndpoint())
}

func TestLoadConfigRequiresProjectID(t *testing.T) {
	t.Setenv("SANITY_PROJECT_ID", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigValidates(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"project id with symbols", "SANITY_PROJECT_ID", "abc-123!"},
		{"api version not a date", "SANITY_API_VERSION", "v1"},
		{"site url", "SITE_URL", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SANITY_PROJECT_ID", "abc123")
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()
	assert.Equal(t, "Oyifa", cfg.Name)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "production", cfg.Content.Dataset)
}
