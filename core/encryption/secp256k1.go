package encryption

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	pkgerrors "github.com/pkg/errors"
)

// SECP256K1Scheme - a signature scheme based on ECDSA over secp256k1
type SECP256K1Scheme struct {
	privateKey *secp256k1.PrivateKey
	publicKey  PublicKey
	hasPublic  bool
	encoding   SignatureEncoding
}

// NewSECP256K1Scheme - create a SECP256K1Scheme object producing raw r||s signatures
func NewSECP256K1Scheme() *SECP256K1Scheme {
	return &SECP256K1Scheme{}
}

// SetSignatureEncoding - pick the encoding Sign emits and Verify accepts
func (s *SECP256K1Scheme) SetSignatureEncoding(enc SignatureEncoding) {
	s.encoding = enc
}

// GenerateKeys - implement interface
func (s *SECP256K1Scheme) GenerateKeys() error {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return err
	}
	s.setPrivateKey(priv)
	return nil
}

// SetPrivateKey - load a private key, the public key follows from it
func (s *SECP256K1Scheme) SetPrivateKey(privateKey string) error {
	priv, err := DecodePrivateKey(privateKey)
	if err != nil {
		return err
	}
	s.setPrivateKey(priv)
	return nil
}

func (s *SECP256K1Scheme) setPrivateKey(priv *secp256k1.PrivateKey) {
	kp := keyPairFrom(priv)
	s.privateKey = priv
	s.publicKey = kp.PublicKey
	s.hasPublic = true
}

// ReadKeys - implement interface
func (s *SECP256K1Scheme) ReadKeys(reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return ErrKeyRead
	}
	publicKey, err := DecodePublicKey(scanner.Text())
	if err != nil {
		return err
	}
	if !scanner.Scan() {
		return ErrKeyRead
	}
	priv, err := DecodePrivateKey(scanner.Text())
	if err != nil {
		return err
	}
	if keyPairFrom(priv).PublicKey != publicKey {
		return pkgerrors.Wrap(ErrKeyRead, "public key does not match private key")
	}
	s.setPrivateKey(priv)
	return nil
}

// WriteKeys - implement interface
func (s *SECP256K1Scheme) WriteKeys(writer io.Writer) error {
	if s.privateKey == nil {
		return ErrNoPrivateKey
	}
	_, err := fmt.Fprintf(writer, "%v\n%v\n", s.publicKey.Hex(), hex.EncodeToString(s.privateKey.Serialize()))
	return err
}

// SetPublicKey - implement interface
func (s *SECP256K1Scheme) SetPublicKey(publicKey string) error {
	if s.privateKey != nil {
		return errors.New("cannot set public key when there is a private key")
	}
	pk, err := DecodePublicKey(publicKey)
	if err != nil {
		return err
	}
	s.publicKey = pk
	s.hasPublic = true
	return nil
}

// GetPublicKey - implement interface
func (s *SECP256K1Scheme) GetPublicKey() string {
	if !s.hasPublic {
		return ""
	}
	return s.publicKey.Hex()
}

// PublicKey - the typed public key
func (s *SECP256K1Scheme) PublicKey() PublicKey {
	return s.publicKey
}

// Sign - implement interface, the result is hex in the configured encoding
func (s *SECP256K1Scheme) Sign(hash interface{}) (string, error) {
	if s.privateKey == nil {
		return "", ErrNoPrivateKey
	}
	rawHash, err := GetRawHash(hash)
	if err != nil {
		return "", err
	}
	mh, err := MessageHashFromBytes(rawHash)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(signHash(mh, s.privateKey).Encode(s.encoding)), nil
}

// Verify - implement interface
func (s *SECP256K1Scheme) Verify(signature string, hash string) (bool, error) {
	if !s.hasPublic {
		return false, ErrInvalidPublicKey
	}
	mh, err := DecodeMessageHash(hash)
	if err != nil {
		return false, err
	}
	sig, err := DecodeSignatureHex(signature, s.encoding)
	if err != nil {
		return false, err
	}
	return VerifyHash(mh, sig, s.publicKey), nil
}
