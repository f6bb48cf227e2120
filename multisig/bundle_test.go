package multisig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0chain/ecdsa-multisig/core/encryption"
)

func signedBundle(t *testing.T, message string, kps ...encryption.KeyPair) *Bundle {
	t.Helper()
	b := NewBundle(message)
	hash := encryption.HashText(message)
	for _, kp := range kps {
		s := encryption.NewSECP256K1Scheme()
		require.NoError(t, s.SetPrivateKey(kp.PrivateKeyHex()))
		sig, err := s.Sign(hash)
		require.NoError(t, err)
		b.Add(sig, kp.PublicKey)
	}
	return b
}

func TestBundle_SaveLoad(t *testing.T) {
	t.Parallel()

	r, kps := newGroup(t, 2, 3)
	b := signedBundle(t, testMessage, kps[0], kps[2])

	for _, name := range []string{"sigs.json", "sigs.msgpack"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveBundle(path, b))

			loaded, err := LoadBundle(path)
			require.NoError(t, err)
			require.Equal(t, b, loaded)

			hash, err := loaded.MessageHash()
			require.NoError(t, err)
			out := VerifyThreshold(r, hash, loaded.SignatureEntries())
			assert.True(t, out.Authorized)
			assert.Equal(t, []int{0, 2}, out.ValidSigners())
		})
	}
}

func TestBundle_UnknownFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sigs.txt")
	require.ErrorIs(t, SaveBundle(path, NewBundle(testMessage)), ErrUnknownBundleFormat)
	_, err := LoadBundle(path)
	require.ErrorIs(t, err, ErrUnknownBundleFormat)
}

func TestBundle_MessageHash(t *testing.T) {
	t.Parallel()

	want := encryption.HashText(testMessage)

	tests := []struct {
		name    string
		bundle  Bundle
		wantErr error
	}{
		{name: "message_and_hash", bundle: Bundle{Message: testMessage, Hash: want.Hex()}},
		{name: "hash_only", bundle: Bundle{Hash: want.Hex()}},
		{name: "message_only", bundle: Bundle{Message: testMessage}},
		{name: "mismatch", bundle: Bundle{Message: testMessage + "!", Hash: want.Hex()}, wantErr: ErrHashMismatch},
		{name: "bad_hash", bundle: Bundle{Hash: "1234"}, wantErr: encryption.ErrInvalidHash},
		{name: "empty", bundle: Bundle{}, wantErr: encryption.ErrInvalidHash},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.bundle.MessageHash()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestBundle_SignatureEntries_BadHex(t *testing.T) {
	t.Parallel()

	r, kps := newGroup(t, 1, 1)
	b := signedBundle(t, testMessage, kps[0])
	b.Entries = append([]BundleEntry{{Signature: "zz", PublicKey: kps[0].PublicKey.Hex()}}, b.Entries...)

	out := VerifyThreshold(r, encryption.HashText(testMessage), b.SignatureEntries())
	assert.True(t, out.Authorized)
	require.Len(t, out.Rejections, 1)
	assert.Equal(t, MalformedEncoding, out.Rejections[0].Reason)
}
