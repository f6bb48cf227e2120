package encryption

import "github.com/0chain/ecdsa-multisig/core/common"

var (
	//ErrInvalidHash - hash is invalid error
	ErrInvalidHash = common.NewError("invalid_hash", "Invalid hash")

	// ErrInvalidPublicKey - the bytes do not encode a secp256k1 point
	ErrInvalidPublicKey = common.NewError("invalid_public_key", "Invalid public key")

	// ErrInvalidPrivateKey - the scalar is zero or not below the group order
	ErrInvalidPrivateKey = common.NewError("invalid_private_key", "Invalid private key")

	// ErrInvalidSignatureEncoding - the bytes do not decode as a signature in the configured encoding
	ErrInvalidSignatureEncoding = common.NewError("invalid_signature_encoding", "Invalid signature encoding")

	// ErrKeyRead - the key file is incomplete
	ErrKeyRead = common.NewError("key_read", "error reading the keys")

	// ErrNoPrivateKey - signing was attempted with a verify-only scheme
	ErrNoPrivateKey = common.NewError("no_private_key", "no private key to sign with")
)
