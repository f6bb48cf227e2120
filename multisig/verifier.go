package multisig

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"

	"github.com/0chain/ecdsa-multisig/core/cache"
	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/core/logging"
)

// DefaultKeyCacheSize is the number of decoded claimed keys a verifier keeps.
const DefaultKeyCacheSize = 1024

// SignatureEntry is a signature together with the key its sender claims
// produced it. Both are raw bytes in the verifier's encodings.
type SignatureEntry struct {
	Signature        []byte
	ClaimedPublicKey []byte
}

// NewSignatureEntry builds an entry from typed values, serializing the
// signature in enc.
func NewSignatureEntry(sig encryption.Signature, key encryption.PublicKey, enc encryption.SignatureEncoding) SignatureEntry {
	return SignatureEntry{Signature: sig.Encode(enc), ClaimedPublicKey: key.Bytes()}
}

// EntryFromHex decodes hex fields. Undecodable hex becomes an empty byte
// string so the verifier reports it as malformed instead of failing.
func EntryFromHex(signature, publicKey string) SignatureEntry {
	return SignatureEntry{Signature: decodeHexOrEmpty(signature), ClaimedPublicKey: decodeHexOrEmpty(publicKey)}
}

func decodeHexOrEmpty(s string) []byte {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return []byte{}
	}
	return b
}

// ThresholdVerifier decides whether enough distinct enrolled participants
// signed a message hash. It holds no per-call state and is safe for
// concurrent use.
type ThresholdVerifier struct {
	encoding  encryption.SignatureEncoding
	logger    *zap.Logger
	metrics   *verifierMetrics
	cacheSize int
	keys      *cache.LRU[string, encryption.PublicKey]
}

// Option configures a ThresholdVerifier.
type Option func(*ThresholdVerifier)

// WithLogger sets the logger decisions are written to. The default is
// logging.Audit.
func WithLogger(l *zap.Logger) Option {
	return func(v *ThresholdVerifier) {
		v.logger = l
	}
}

// WithMetrics registers the verifier's timers and counters in r.
func WithMetrics(r metrics.Registry) Option {
	return func(v *ThresholdVerifier) {
		v.metrics = newVerifierMetrics(r)
	}
}

// WithKeyCacheSize bounds the decoded key cache.
func WithKeyCacheSize(n int) Option {
	return func(v *ThresholdVerifier) {
		v.cacheSize = n
	}
}

// WithSignatureEncoding sets the encoding entries' signatures are decoded
// with.
func WithSignatureEncoding(enc encryption.SignatureEncoding) Option {
	return func(v *ThresholdVerifier) {
		v.encoding = enc
	}
}

// NewThresholdVerifier creates a verifier for raw signatures unless
// configured otherwise.
func NewThresholdVerifier(opts ...Option) *ThresholdVerifier {
	v := &ThresholdVerifier{
		encoding:  encryption.SignatureRaw,
		cacheSize: DefaultKeyCacheSize,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.metrics == nil {
		v.metrics = newVerifierMetrics(metrics.DefaultRegistry)
	}
	if v.cacheSize < 1 {
		v.cacheSize = DefaultKeyCacheSize
	}
	v.keys = cache.NewLRUCache[string, encryption.PublicKey](v.cacheSize)
	return v
}

// Encoding returns the signature encoding the verifier accepts.
func (v *ThresholdVerifier) Encoding() encryption.SignatureEncoding {
	return v.encoding
}

// KeyCache exposes the decoded key cache for statistics.
func (v *ThresholdVerifier) KeyCache() *cache.LRU[string, encryption.PublicKey] {
	return v.keys
}

func (v *ThresholdVerifier) log() *zap.Logger {
	if v.logger != nil {
		return v.logger
	}
	return logging.Audit
}

// Verify checks every entry against the registry and counts distinct
// valid signers. It never fails: every entry that does not count is
// recorded in the outcome's rejections, in input order.
func (v *ThresholdVerifier) Verify(r *Registry, hash encryption.MessageHash, entries []SignatureEntry) *Outcome {
	start := time.Now()
	snap := r.snapshot()
	out := newOutcome(snap.threshold, snap.id)
	log := v.log()

	for pos, e := range entries {
		pk, err := v.decodeKey(e.ClaimedPublicKey)
		if err != nil {
			out.reject(pos, e.ClaimedPublicKey, MalformedEncoding, err.Error())
			continue
		}
		idx, ok := snap.byKey[pk]
		if !ok {
			out.reject(pos, e.ClaimedPublicKey, UnknownKey, "")
			continue
		}
		if out.Signed(idx) {
			out.reject(pos, e.ClaimedPublicKey, DuplicateSigner, "participant "+snap.participants[idx].ID)
			continue
		}
		sig, err := encryption.DecodeSignature(e.Signature, v.encoding)
		if err != nil {
			out.reject(pos, e.ClaimedPublicKey, MalformedEncoding, err.Error())
			continue
		}
		if !encryption.VerifyHashWith(hash, sig, snap.participants[idx].key) {
			out.reject(pos, e.ClaimedPublicKey, InvalidSignature, "")
			continue
		}
		out.validSigners[idx] = struct{}{}
	}
	out.Authorized = out.Count() >= snap.threshold

	for _, rej := range out.Rejections {
		log.Debug("signature rejected",
			zap.String("registry", snap.id),
			zap.String("hash", hash.Hex()),
			zap.Int("position", rej.Position),
			zap.String("reason", string(rej.Reason)),
			zap.String("detail", rej.Detail))
	}
	log.Info("threshold verification",
		zap.String("registry", snap.id),
		zap.String("hash", hash.Hex()),
		zap.Bool("authorized", out.Authorized),
		zap.Ints("signers", out.ValidSigners()),
		zap.Int("threshold", snap.threshold),
		zap.Int("entries", len(entries)),
		zap.Int("rejections", len(out.Rejections)))

	v.metrics.record(out)
	v.metrics.verifyTimer.UpdateSince(start)
	return out
}

// decodeKey parses a claimed key, remembering keys seen before.
func (v *ThresholdVerifier) decodeKey(b []byte) (encryption.PublicKey, error) {
	if pk, err := v.keys.Get(string(b)); err == nil {
		return pk, nil
	}
	pk, err := encryption.ParsePublicKey(b)
	if err != nil {
		return pk, err
	}
	_ = v.keys.Add(string(b), pk)
	return pk, nil
}

var defaultVerifier = NewThresholdVerifier()

// VerifyThreshold verifies raw r||s signatures with the package default
// verifier.
func VerifyThreshold(r *Registry, hash encryption.MessageHash, entries []SignatureEntry) *Outcome {
	return defaultVerifier.Verify(r, hash, entries)
}
