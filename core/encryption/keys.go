package encryption

import (
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

const (
	// PublicKeySize is the size of the canonical compressed form.
	PublicKeySize = secp256k1.PubKeyBytesLenCompressed
	// PrivateKeySize is the size of a serialized private scalar.
	PrivateKeySize = secp256k1.PrivKeyBytesLen
	// SignatureSize is the size of the raw r||s form.
	SignatureSize = 64

	uncompressedKeySize = secp256k1.PubKeyBytesLenUncompressed
	rawPointSize        = uncompressedKeySize - 1
	pubKeyFormatUncomp  = 0x04
	scalarSize          = 32
)

// PublicKey is a secp256k1 public key in compressed form. Every accepted
// input encoding of the same point maps to the same PublicKey value, so it
// can be compared and used as a map key.
type PublicKey [PublicKeySize]byte

// ParsePublicKey accepts a 33 byte compressed key, a 65 byte uncompressed
// key or a 64 byte X||Y key without the format prefix.
func ParsePublicKey(b []byte) (PublicKey, error) {
	var pk PublicKey
	key, err := parseKey(b)
	if err != nil {
		return pk, err
	}
	copy(pk[:], key.SerializeCompressed())
	return pk, nil
}

// DecodePublicKey parses the hex form of any encoding ParsePublicKey accepts.
func DecodePublicKey(str string) (PublicKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(str))
	if err != nil {
		return PublicKey{}, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return ParsePublicKey(b)
}

func parseKey(b []byte) (*secp256k1.PublicKey, error) {
	if len(b) == uncompressedKeySize && b[0] != pubKeyFormatUncomp {
		return nil, errors.Wrapf(ErrInvalidPublicKey, "unsupported key format 0x%02x", b[0])
	}
	if len(b) == rawPointSize {
		prefixed := make([]byte, 0, uncompressedKeySize)
		prefixed = append(prefixed, pubKeyFormatUncomp)
		b = append(prefixed, b...)
	}
	key, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return key, nil
}

// ECPublicKey returns the curve point.
func (pk PublicKey) ECPublicKey() (*secp256k1.PublicKey, error) {
	return parseKey(pk[:])
}

func (pk PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, pk[:])
	return b
}

// Uncompressed returns the 65 byte 0x04||X||Y form.
func (pk PublicKey) Uncompressed() []byte {
	key, err := pk.ECPublicKey()
	if err != nil {
		return nil
	}
	return key.SerializeUncompressed()
}

// Hex returns the lowercase hex of the compressed form.
func (pk PublicKey) Hex() string {
	return hex.EncodeToString(pk[:])
}

func (pk PublicKey) String() string {
	return pk.Hex()
}

// Short returns the first ten hex characters, enough to tell keys apart in
// log lines.
func (pk PublicKey) Short() string {
	return pk.Hex()[:10]
}

// KeyPair is the output of key generation. The private key is handed to the
// caller and never retained.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  PublicKey
}

// PrivateKeyHex returns the lowercase hex of the private scalar.
func (kp KeyPair) PrivateKeyHex() string {
	return hex.EncodeToString(kp.PrivateKey)
}

// GenerateKeyPair creates a keypair from the operating system CSPRNG.
func GenerateKeyPair() (KeyPair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return KeyPair{}, errors.Wrap(err, "generate secp256k1 private key")
	}
	return keyPairFrom(priv), nil
}

func keyPairFrom(priv *secp256k1.PrivateKey) KeyPair {
	var pk PublicKey
	copy(pk[:], priv.PubKey().SerializeCompressed())
	return KeyPair{PrivateKey: priv.Serialize(), PublicKey: pk}
}

// ParsePrivateKey validates a 32 byte scalar in [1, N-1].
func ParsePrivateKey(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != PrivateKeySize {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "want %d bytes, got %d", PrivateKeySize, len(b))
	}
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(b); overflow || k.IsZero() {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "scalar out of range")
	}
	return secp256k1.NewPrivateKey(&k), nil
}

// DecodePrivateKey parses the hex form of a private scalar.
func DecodePrivateKey(str string) (*secp256k1.PrivateKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(str))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}
	return ParsePrivateKey(b)
}

// SignHash signs the digest with RFC6979 deterministic nonces.
func SignHash(hash MessageHash, privateKey []byte) (Signature, error) {
	priv, err := ParsePrivateKey(privateKey)
	if err != nil {
		return Signature{}, err
	}
	defer priv.Zero()
	return signHash(hash, priv), nil
}

func signHash(hash MessageHash, priv *secp256k1.PrivateKey) Signature {
	// compact form is recovery code || r || s
	compact := ecdsa.SignCompact(priv, hash[:], true)
	var sig Signature
	copy(sig[:], compact[1:])
	return sig
}

// VerifyHash reports whether sig is a valid signature of hash by key.
func VerifyHash(hash MessageHash, sig Signature, key PublicKey) bool {
	ecKey, err := key.ECPublicKey()
	if err != nil {
		return false
	}
	return VerifyHashWith(hash, sig, ecKey)
}

// VerifyHashWith is VerifyHash for a key that was already parsed.
func VerifyHashWith(hash MessageHash, sig Signature, key *secp256k1.PublicKey) bool {
	s, err := sig.toECDSA()
	if err != nil {
		return false
	}
	return s.Verify(hash[:], key)
}
