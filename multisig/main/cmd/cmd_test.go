package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/multisig"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := newRootCmd()
	c.SetOut(&out)
	c.SetErr(io.Discard)
	c.SetArgs(append(args, "--log-dir", t.TempDir()))
	err := c.Execute()
	return out.String(), err
}

func TestHashCmd(t *testing.T) {
	out, err := run(t, "hash", "--message", "This is a test message")
	require.NoError(t, err)
	assert.Equal(t, "6f3438001129a90c5b1637928bf38bf26e39e57c6e9511005682048bedbef906\n", out)
}

func TestKeygenCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	out, err := run(t, "keygen", "--out", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0]+"\n", out)

	_, err = run(t, "keygen", "--out", path)
	require.Error(t, err, "existing key files are never overwritten")

	out, err = run(t, "keygen")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
}

func TestSignEnrollVerify(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "group.yaml")

	keys := make([]string, 3)
	for i := range keys {
		keys[i] = filepath.Join(dir, "key"+strconv.Itoa(i)+".txt")
		pub, err := run(t, "keygen", "--out", keys[i])
		require.NoError(t, err)

		out, err := run(t, "enroll", "--manifest", manifest, "--key", strings.TrimSpace(pub), "--threshold", "2", "--capacity", "3")
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i)+"\n", out)
	}

	m, err := multisig.LoadManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Threshold)
	assert.Equal(t, 3, m.Capacity)
	assert.Len(t, m.Participants, 3)

	extra, err := encryption.GenerateKeyPair()
	require.NoError(t, err)
	_, err = run(t, "enroll", "--manifest", manifest, "--key", extra.PublicKey.Hex())
	require.ErrorIs(t, err, multisig.ErrRegistryFull)

	bundle := filepath.Join(dir, "sigs.json")
	_, err = run(t, "sign", "--keys", keys[0], "--message", "This is a test message", "--bundle", bundle)
	require.NoError(t, err)

	_, err = run(t, "verify", "--manifest", manifest, "--bundle", bundle)
	require.ErrorIs(t, err, ErrNotAuthorized)

	hash := encryption.HashText("This is a test message").Hex()
	_, err = run(t, "sign", "--keys", keys[1], "--hash", hash, "--bundle", bundle)
	require.NoError(t, err)

	out, err := run(t, "verify", "--manifest", manifest, "--bundle", bundle)
	require.NoError(t, err)
	assert.Contains(t, out, "authorized=true")
	assert.Contains(t, out, "signers=[0 1]")

	out, err = run(t, "verify", "--manifest", manifest, "--bundle", bundle, "--json")
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, true, decoded["authorized"])

	_, err = run(t, "sign", "--keys", keys[2], "--message", "another message", "--bundle", bundle)
	require.ErrorIs(t, err, multisig.ErrHashMismatch)
}

func TestSignCmd_HashOnlyBundle(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "key.txt")
	_, err := run(t, "keygen", "--out", key)
	require.NoError(t, err)

	hash := encryption.HashText("This is a test message")
	bundle := filepath.Join(dir, "sigs.msgpack")
	_, err = run(t, "sign", "--keys", key, "--hash", hash.Hex(), "--bundle", bundle)
	require.NoError(t, err)

	b, err := multisig.LoadBundle(bundle)
	require.NoError(t, err)
	assert.Empty(t, b.Message)
	assert.Equal(t, hash.Hex(), b.Hash)
	require.Len(t, b.Entries, 1)

	got, err := b.MessageHash()
	require.NoError(t, err)
	assert.Equal(t, hash, got)
}

func TestSignCmd_Errors(t *testing.T) {
	dir := t.TempDir()
	key := filepath.Join(dir, "key.txt")
	_, err := run(t, "keygen", "--out", key)
	require.NoError(t, err)

	_, err = run(t, "sign", "--keys", key)
	require.Error(t, err)

	_, err = run(t, "sign", "--keys", key, "--message", "a", "--hash", encryption.HashText("b").Hex())
	require.ErrorIs(t, err, multisig.ErrHashMismatch)

	_, err = run(t, "sign", "--keys", filepath.Join(dir, "missing.txt"), "--message", "a")
	require.Error(t, err)

	_, err = run(t, "sign", "--keys", key, "--message", "a", "--bundle", filepath.Join(dir, "sigs.txt"))
	require.ErrorIs(t, err, multisig.ErrUnknownBundleFormat)
}

func TestDemoCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "Test_Demo_2_of_3_OK",
			args: []string{"demo"},
			want: []string{
				"Message to sign: This is a test message",
				"Participant 0 signed the message",
				"Participant 2 signed the message",
				"Message verification with 2 signatures: Success",
				"Message verification with 1 signatures: Failed",
				"Message verification with 3 signatures: Success",
			},
		},
		{
			name: "Test_Demo_DER_3_of_5_OK",
			args: []string{"demo", "--threshold", "3", "--participants", "5", "--signature-encoding", "der"},
			want: []string{
				"Message verification with 3 signatures: Success",
				"Message verification with 2 signatures: Failed",
				"Message verification with 5 signatures: Success",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestDemoCmd_InvalidGroup(t *testing.T) {
	_, err := run(t, "demo", "--threshold", "3", "--participants", "2")
	require.True(t, multisig.IsConfigError(err))
}

func TestRunDemo_OneOfOne(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, runDemo(&out, multisig.NewThresholdVerifier(), 1, 1, "hello"))
	assert.Contains(t, out.String(), "Message verification with 1 signatures: Success")
	assert.Contains(t, out.String(), "Message verification with 0 signatures: Failed")
}
