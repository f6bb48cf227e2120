package encryption

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/pkg/errors"
)

// SignatureEncoding names the byte layout signatures travel in. A verifier
// is configured with exactly one.
type SignatureEncoding int

const (
	// SignatureRaw is 64 bytes: r then s, each 32 bytes big endian.
	SignatureRaw SignatureEncoding = iota
	// SignatureDER is the strict ASN.1 DER sequence of r and s.
	SignatureDER
)

func (e SignatureEncoding) String() string {
	switch e {
	case SignatureRaw:
		return "raw"
	case SignatureDER:
		return "der"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// ParseSignatureEncoding maps "raw" and "der" (any case) to an encoding.
func ParseSignatureEncoding(name string) (SignatureEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "raw":
		return SignatureRaw, nil
	case "der":
		return SignatureDER, nil
	default:
		return SignatureRaw, errors.Wrapf(ErrInvalidSignatureEncoding, "unknown signature encoding %q", name)
	}
}

// Signature is an ECDSA signature held as raw r||s with both scalars in
// [1, N-1].
type Signature [SignatureSize]byte

// DecodeSignature decodes and range checks a signature in the given encoding.
func DecodeSignature(b []byte, enc SignatureEncoding) (Signature, error) {
	switch enc {
	case SignatureRaw:
		return decodeRaw(b)
	case SignatureDER:
		return decodeDER(b)
	default:
		return Signature{}, errors.Wrapf(ErrInvalidSignatureEncoding, "unknown signature encoding %v", enc)
	}
}

// DecodeSignatureHex is DecodeSignature for hex input.
func DecodeSignatureHex(str string, enc SignatureEncoding) (Signature, error) {
	b, err := hex.DecodeString(strings.TrimSpace(str))
	if err != nil {
		return Signature{}, errors.Wrap(ErrInvalidSignatureEncoding, err.Error())
	}
	return DecodeSignature(b, enc)
}

func decodeRaw(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, errors.Wrapf(ErrInvalidSignatureEncoding, "raw signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	copy(sig[:], b)
	if _, err := sig.toECDSA(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

func decodeDER(b []byte) (Signature, error) {
	if _, err := ecdsa.ParseDERSignature(b); err != nil {
		return Signature{}, errors.Wrap(ErrInvalidSignatureEncoding, err.Error())
	}

	// ParseDERSignature guarantees 0x30 len 0x02 rlen r 0x02 slen s with
	// minimal integer encodings.
	rLen := int(b[3])
	r := b[4 : 4+rLen]
	sLen := int(b[5+rLen])
	s := b[6+rLen : 6+rLen+sLen]

	var sig Signature
	putScalar(sig[:scalarSize], r)
	putScalar(sig[scalarSize:], s)
	return sig, nil
}

// putScalar right aligns a big endian integer without its sign padding.
func putScalar(dst, src []byte) {
	for len(src) > scalarSize && src[0] == 0 {
		src = src[1:]
	}
	copy(dst[scalarSize-len(src):], src)
}

func (sig Signature) toECDSA() (*ecdsa.Signature, error) {
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[:scalarSize]); overflow || r.IsZero() {
		return nil, errors.Wrap(ErrInvalidSignatureEncoding, "r out of range")
	}
	if overflow := s.SetByteSlice(sig[scalarSize:]); overflow || s.IsZero() {
		return nil, errors.Wrap(ErrInvalidSignatureEncoding, "s out of range")
	}
	return ecdsa.NewSignature(&r, &s), nil
}

// Encode serializes the signature in the given encoding.
func (sig Signature) Encode(enc SignatureEncoding) []byte {
	switch enc {
	case SignatureDER:
		s, err := sig.toECDSA()
		if err != nil {
			return nil
		}
		return s.Serialize()
	default:
		b := make([]byte, SignatureSize)
		copy(b, sig[:])
		return b
	}
}

// Hex returns the lowercase hex of the raw form.
func (sig Signature) Hex() string {
	return hex.EncodeToString(sig[:])
}

func (sig Signature) String() string {
	return sig.Hex()
}
