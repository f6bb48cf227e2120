package encryption

import (
	"encoding/hex"
	"strings"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

const HASH_LENGTH = 32

// MessageHash is the SHA-256 digest of a message. It is the value that gets
// signed, never the raw message.
type MessageHash [HASH_LENGTH]byte

// HashMessage hashes the message bytes.
func HashMessage(message []byte) MessageHash {
	return MessageHash(sha256.Sum256(message))
}

// HashText hashes the UTF-8 bytes of the message.
func HashText(message string) MessageHash {
	return HashMessage([]byte(message))
}

// Bytes returns a copy of the digest.
func (h MessageHash) Bytes() []byte {
	b := make([]byte, HASH_LENGTH)
	copy(b, h[:])
	return b
}

// Hex returns the lowercase hex form of the digest.
func (h MessageHash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h MessageHash) String() string {
	return h.Hex()
}

// MessageHashFromBytes validates the length of a raw digest.
func MessageHashFromBytes(b []byte) (MessageHash, error) {
	var h MessageHash
	if len(b) != HASH_LENGTH {
		return h, errors.Wrapf(ErrInvalidHash, "want %d bytes, got %d", HASH_LENGTH, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// DecodeMessageHash parses a hex digest, case insensitive.
func DecodeMessageHash(str string) (MessageHash, error) {
	b, err := hex.DecodeString(strings.TrimSpace(str))
	if err != nil {
		return MessageHash{}, errors.Wrap(ErrInvalidHash, err.Error())
	}
	return MessageHashFromBytes(b)
}

func IsHash(str string) bool {
	_, err := DecodeMessageHash(str)
	return err == nil
}

// ClientID is the SHA3-256 hex of the compressed public key. It names a
// participant in logs and reports without printing the whole key.
func ClientID(key PublicKey) string {
	sum := sha3.Sum256(key[:])
	return hex.EncodeToString(sum[:])
}
