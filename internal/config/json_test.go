package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"app": {
			"token_sign_key": "json-secret",
			"token_issuer": "wallets-test",
			"token_duration": "72h",
			"environment": "production"
		},
		"storage": {"data_dir": "testdata", "dsn": ""},
		"server": {"http_address": "localhost:8081", "request_timeout": "15s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "wallets-test", cfg.App.TokenIssuer)
	assert.Equal(t, 72*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "testdata", cfg.Storage.DataDir)
	assert.Equal(t, "localhost:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"app": {`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{name: "string form", in: `"90m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", in: `1000000000`, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalInvalidString(t *testing.T) {
	var d Duration
	require.Error(t, d.UnmarshalJSON([]byte(`"soon"`)))
}
