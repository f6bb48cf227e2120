package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/core/viper"
	"github.com/0chain/ecdsa-multisig/multisig"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "multisig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	c, err := LoadFrom(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, c.Multisig.Threshold)
	assert.Equal(t, 3, c.Multisig.Capacity)
	assert.Equal(t, encryption.SignatureRaw, c.Multisig.Encoding())
	assert.Equal(t, multisig.DefaultKeyCacheSize, c.Multisig.KeyCacheSize)
	assert.Empty(t, c.Multisig.Participants)
	assert.Equal(t, "info", c.Logging.Level)
	assert.False(t, c.Logging.Console)
	assert.Equal(t, "log", c.Logging.Dir)
}

func TestLoadFrom_File(t *testing.T) {
	kp, err := encryption.GenerateKeyPair()
	require.NoError(t, err)

	path := writeConfig(t, `
multisig:
  threshold: 1
  capacity: 2
  signature_encoding: der
  participants:
    - `+kp.PublicKey.Hex()+`
logging:
  level: debug
  console: true
`)
	c, err := LoadFrom(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Multisig.Threshold)
	assert.Equal(t, 2, c.Multisig.Capacity)
	assert.Equal(t, encryption.SignatureDER, c.Multisig.Encoding())
	assert.Equal(t, "debug", c.Logging.Level)
	assert.True(t, c.Logging.Console)

	r, err := c.Multisig.NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Size())
	idx, ok := r.Lookup(kp.PublicKey)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	v := multisig.NewThresholdVerifier(c.Multisig.VerifierOptions()...)
	assert.Equal(t, encryption.SignatureDER, v.Encoding())
}

func TestLoadFrom_Env(t *testing.T) {
	t.Setenv("MULTISIG_MULTISIG_THRESHOLD", "4")
	t.Setenv("MULTISIG_MULTISIG_CAPACITY", "5")
	t.Setenv("MULTISIG_LOGGING_LEVEL", "warn")

	c, err := LoadFrom(viper.New(), writeConfig(t, "multisig:\n  threshold: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Multisig.Threshold)
	assert.Equal(t, 5, c.Multisig.Capacity)
	assert.Equal(t, "warn", c.Logging.Level)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "threshold_exceeds_capacity", content: "multisig:\n  threshold: 3\n  capacity: 2\n"},
		{name: "zero_threshold", content: "multisig:\n  threshold: 0\n"},
		{name: "zero_capacity", content: "multisig:\n  threshold: 1\n  capacity: 0\n"},
		{name: "bad_encoding", content: "multisig:\n  signature_encoding: base64\n"},
		{name: "bad_participant", content: "multisig:\n  participants: [\"not-hex\"]\n"},
		{name: "bad_level", content: "logging:\n  level: verbose\n"},
		{name: "zero_cache", content: "multisig:\n  key_cache_size: 0\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFrom(viper.New(), writeConfig(t, tt.content))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFrom(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestMultisig_NewRegistry_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Multisig{Threshold: 3, Capacity: 2}.NewRegistry()
	require.True(t, multisig.IsConfigError(err))
}
