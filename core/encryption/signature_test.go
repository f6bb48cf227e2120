package encryption

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureEncoding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    SignatureEncoding
		wantErr bool
	}{
		{in: "", want: SignatureRaw},
		{in: "raw", want: SignatureRaw},
		{in: "DER", want: SignatureDER},
		{in: " der ", want: SignatureDER},
		{in: "base64", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseSignatureEncoding(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidSignatureEncoding)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "raw", SignatureRaw.String())
	assert.Equal(t, "der", SignatureDER.String())
}

func testSignature(t *testing.T) (Signature, KeyPair) {
	t.Helper()
	kp, err := GenerateKeyPair()
	require.NoError(t, err)
	sig, err := SignHash(HashText(testMessage), kp.PrivateKey)
	require.NoError(t, err)
	return sig, kp
}

func TestSignature_EncodeDecode(t *testing.T) {
	t.Parallel()

	sig, kp := testSignature(t)
	for _, enc := range []SignatureEncoding{SignatureRaw, SignatureDER} {
		enc := enc
		t.Run(enc.String(), func(t *testing.T) {
			t.Parallel()

			b := sig.Encode(enc)
			got, err := DecodeSignature(b, enc)
			require.NoError(t, err)
			require.Equal(t, sig, got)
			require.True(t, VerifyHash(HashText(testMessage), got, kp.PublicKey))
		})
	}

	der := sig.Encode(SignatureDER)
	require.Equal(t, byte(0x30), der[0])
	require.Len(t, sig.Encode(SignatureRaw), SignatureSize)
	require.Equal(t, sig.Hex(), sig.String())
}

func TestDecodeSignature_Malformed(t *testing.T) {
	t.Parallel()

	sig, _ := testSignature(t)
	raw := sig.Encode(SignatureRaw)
	der := sig.Encode(SignatureDER)

	zeroR := append(make([]byte, scalarSize), raw[scalarSize:]...)
	overflowS := append(append([]byte{}, raw[:scalarSize]...), bytes.Repeat([]byte{0xff}, scalarSize)...)

	tests := []struct {
		name string
		in   []byte
		enc  SignatureEncoding
	}{
		{name: "raw_empty", in: nil, enc: SignatureRaw},
		{name: "raw_short", in: raw[:63], enc: SignatureRaw},
		{name: "raw_long", in: append(append([]byte{}, raw...), 0), enc: SignatureRaw},
		{name: "raw_zero_r", in: zeroR, enc: SignatureRaw},
		{name: "raw_overflow_s", in: overflowS, enc: SignatureRaw},
		{name: "der_given_raw", in: raw, enc: SignatureDER},
		{name: "der_truncated", in: der[:len(der)-1], enc: SignatureDER},
		{name: "raw_given_der", in: der, enc: SignatureRaw},
		{name: "unknown_encoding", in: raw, enc: SignatureEncoding(7)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeSignature(tt.in, tt.enc)
			require.ErrorIs(t, err, ErrInvalidSignatureEncoding)
		})
	}

	_, err := DecodeSignatureHex("0x1234", SignatureRaw)
	require.ErrorIs(t, err, ErrInvalidSignatureEncoding)
}
