// Package multisig implements M-of-N threshold authorization over
// independently produced secp256k1 ECDSA signatures.
//
// A Registry holds the group configuration and the enrolled participant
// keys. A ThresholdVerifier checks a set of (signature, claimed key) entries
// against a registry and reports which participants signed and why every
// other entry was rejected. Signatures are never combined: each one is
// verified on its own and distinct valid signers are counted.
package multisig
