package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() and Destination() read.
var allConfigKeys = []string{
	"SOCIALROUTE_LISTEN_ADDR",
	"SOCIALROUTE_DB_PATH",
	"SOCIALROUTE_FORWARD_TIMEOUT",
	"SOCIALROUTE_OTEL_ENDPOINT",
	"SOCIALROUTE_SITE_URL",
	DestinationEnv,
}

// isolateConfigEnv saves and unsets all config env vars so tests don't
// inherit values from the host environment (e.g. a running dev server).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("SOCIALROUTE_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("SOCIALROUTE_DB_PATH", "/tmp/test.db")
	t.Setenv("SOCIALROUTE_FORWARD_TIMEOUT", "15s")
	t.Setenv("SOCIALROUTE_OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("SOCIALROUTE_SITE_URL", "https://staging.socialroute.in")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 15*time.Second, cfg.ForwardTimeout)
	assert.Equal(t, "http://collector:4318", cfg.OTelEndpoint)
	assert.Equal(t, "https://staging.socialroute.in", cfg.SiteURL)
	assert.True(t, cfg.HasTracing())
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, "socialroute.db", cfg.DBPath)
	assert.Equal(t, time.Duration(0), cfg.ForwardTimeout)
	assert.Equal(t, "https://socialroute.in", cfg.SiteURL)
	assert.False(t, cfg.HasTracing())
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantMsg string
	}{
		{name: "unparsable timeout", key: "SOCIALROUTE_FORWARD_TIMEOUT", value: "soon", wantMsg: "parse env"},
		{name: "negative timeout", key: "SOCIALROUTE_FORWARD_TIMEOUT", value: "-5s", wantMsg: "SOCIALROUTE_FORWARD_TIMEOUT"},
		{name: "relative site url", key: "SOCIALROUTE_SITE_URL", value: "socialroute.in", wantMsg: "SOCIALROUTE_SITE_URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

// TestLoad_IgnoresDestination verifies the forwarding URL is not part of
// startup configuration: Load succeeds without it.
func TestLoad_IgnoresDestination(t *testing.T) {
	isolateConfigEnv(t)

	_, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "", Destination())
}

func TestDestination_ReadsCurrentValue(t *testing.T) {
	isolateConfigEnv(t)

	t.Setenv(DestinationEnv, "https://script.google.com/macros/s/abc/exec")
	assert.Equal(t, "https://script.google.com/macros/s/abc/exec", Destination())

	t.Setenv(DestinationEnv, "https://script.google.com/macros/s/rotated/exec")
	assert.Equal(t, "https://script.google.com/macros/s/rotated/exec", Destination())
}
