package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 168*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

func TestConfigBuilder_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "from-env", TokenDuration: time.Hour}},
		&StructuredConfig{App: App{TokenSignKey: "from-json", TokenIssuer: "json-issuer"}},
	)
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	// issuer was only supplied by the later source
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
}

func TestValidate_RejectsMissingSignKey(t *testing.T) {
	cfg := defaultConfig()

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestValidate_RejectsMissingStorage(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DataDir = ""
	cfg.Storage.DSN = ""

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_AcceptsDSNOnlyStorage(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DataDir = ""
	cfg.Storage.DSN = "wallets.db"

	require.NoError(t, cfg.validate())
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:9000"))
	assert.Equal(t, "localhost:9000", a.String())

	require.Error(t, a.Set("no-port"))
	require.Error(t, a.Set("localhost:0"))
	require.Error(t, a.Set("not an ip:80"))
}
