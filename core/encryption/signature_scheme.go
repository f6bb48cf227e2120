package encryption

import (
	"encoding/hex"
	"fmt"
	"io"
)

//SignatureScheme - an encryption scheme for signing and verifying messages
type SignatureScheme interface {
	GenerateKeys() error

	ReadKeys(reader io.Reader) error
	WriteKeys(writer io.Writer) error

	SetPublicKey(publicKey string) error
	GetPublicKey() string

	Sign(hash interface{}) (string, error)
	Verify(signature string, hash string) (bool, error)
}

const SchemeSECP256K1 = "secp256k1"

//GetSignatureScheme - given the name, return a signature scheme
func GetSignatureScheme(sigScheme string) SignatureScheme {
	switch sigScheme {
	case SchemeSECP256K1:
		return NewSECP256K1Scheme()
	default:
		panic(fmt.Sprintf("unknown signature scheme: %v", sigScheme))
	}
}

//GetRawHash - given a hash interface (raw hash, hex string), return the raw hash
func GetRawHash(hash interface{}) ([]byte, error) {
	switch hashImpl := hash.(type) {
	case []byte:
		return hashImpl, nil
	case MessageHash:
		return hashImpl[:], nil
	case string:
		decoded, err := hex.DecodeString(hashImpl)
		if err != nil {
			return nil, err
		}
		return decoded, nil
	default:
		return nil, fmt.Errorf("unknown hash type %T", hash)
	}
}
