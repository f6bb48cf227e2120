package multisig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/0chain/ecdsa-multisig/core/common"
	"github.com/0chain/ecdsa-multisig/core/encryption"
)

// BundleEntry is one collected signature with its claimed key, both hex.
type BundleEntry struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
}

// Bundle carries the signatures collected over one message hash between
// the signers and the verifier.
type Bundle struct {
	Message string        `json:"message,omitempty"`
	Hash    string        `json:"hash"`
	Entries []BundleEntry `json:"entries"`
}

// NewBundle starts a bundle for message.
func NewBundle(message string) *Bundle {
	return &Bundle{Message: message, Hash: encryption.HashText(message).Hex(), Entries: []BundleEntry{}}
}

// NewHashBundle starts a bundle for a hash whose message is not shared.
func NewHashBundle(hash encryption.MessageHash) *Bundle {
	return &Bundle{Hash: hash.Hex(), Entries: []BundleEntry{}}
}

// Add appends a signature in hex form.
func (b *Bundle) Add(signature string, key encryption.PublicKey) {
	b.Entries = append(b.Entries, BundleEntry{Signature: strings.ToLower(signature), PublicKey: key.Hex()})
}

// MessageHash returns the bundle's hash. When the message is present it
// must hash to the recorded value; a bundle carrying only a message gets
// its hash computed.
func (b *Bundle) MessageHash() (encryption.MessageHash, error) {
	if b.Hash == "" {
		if b.Message == "" {
			return encryption.MessageHash{}, errors.Wrap(encryption.ErrInvalidHash, "bundle has neither message nor hash")
		}
		return encryption.HashText(b.Message), nil
	}
	h, err := encryption.DecodeMessageHash(b.Hash)
	if err != nil {
		return h, err
	}
	if b.Message != "" && encryption.HashText(b.Message) != h {
		return h, errors.Wrapf(ErrHashMismatch, "hash %s", h.Hex())
	}
	return h, nil
}

// SignatureEntries converts the bundle into verifier input.
func (b *Bundle) SignatureEntries() []SignatureEntry {
	entries := make([]SignatureEntry, len(b.Entries))
	for i, e := range b.Entries {
		entries[i] = EntryFromHex(e.Signature, e.PublicKey)
	}
	return entries
}

func bundleCodec(path string) (int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".msgpack", ".mp":
		return common.CodecForFile(path), nil
	default:
		return 0, errors.Wrap(ErrUnknownBundleFormat, path)
	}
}

// LoadBundle reads a .json or .msgpack bundle.
func LoadBundle(path string) (*Bundle, error) {
	codec, err := bundleCodec(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var b Bundle
	if err := common.Read(f, codec, &b); err != nil {
		return nil, errors.Wrapf(err, "read bundle %s", path)
	}
	return &b, nil
}

// SaveBundle writes b in the format its extension names.
func SaveBundle(path string, b *Bundle) error {
	codec, err := bundleCodec(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := common.Write(f, codec, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
