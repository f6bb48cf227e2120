package multisig

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/0chain/ecdsa-multisig/core/common"
)

// RejectionKind is the reason a signature entry did not count.
type RejectionKind string

const (
	// UnknownKey - the claimed key is not enrolled
	UnknownKey RejectionKind = "unknown_key"
	// DuplicateSigner - the participant was already counted
	DuplicateSigner RejectionKind = "duplicate_signer"
	// InvalidSignature - the signature does not verify under the claimed key
	InvalidSignature RejectionKind = "invalid_signature"
	// MalformedEncoding - the key or signature bytes could not be decoded
	MalformedEncoding RejectionKind = "malformed_encoding"
)

var rejectionLabels = common.LookupByCode(common.CreateLookups(
	string(UnknownKey), "Unknown key",
	string(DuplicateSigner), "Duplicate signer",
	string(InvalidSignature), "Invalid signature",
	string(MalformedEncoding), "Malformed encoding",
))

// Label returns a human readable name of the kind.
func (k RejectionKind) Label() string {
	if l, ok := rejectionLabels[string(k)]; ok {
		return l.GetValue()
	}
	return string(k)
}

func (k RejectionKind) String() string {
	return string(k)
}

// Rejection records one entry that did not count toward the threshold.
type Rejection struct {
	Position         int           `json:"position"`
	ClaimedPublicKey []byte        `json:"claimed_public_key"`
	Reason           RejectionKind `json:"reason"`
	Detail           string        `json:"detail,omitempty"`
}

// MarshalJSON writes the claimed key as lowercase hex.
func (r Rejection) MarshalJSON() ([]byte, error) {
	type rejection Rejection
	return json.Marshal(struct {
		rejection
		ClaimedPublicKey string `json:"claimed_public_key"`
	}{rejection(r), hex.EncodeToString(r.ClaimedPublicKey)})
}

func (r Rejection) String() string {
	s := fmt.Sprintf("#%d %x: %s", r.Position, r.ClaimedPublicKey, r.Reason.Label())
	if r.Detail != "" {
		s += " (" + r.Detail + ")"
	}
	return s
}

// Outcome is the result of a threshold verification.
type Outcome struct {
	Authorized bool        `json:"authorized"`
	Threshold  int         `json:"threshold"`
	RegistryID string      `json:"registry_id"`
	Rejections []Rejection `json:"rejections"`

	validSigners map[int]struct{}
}

func newOutcome(threshold int, registryID string) *Outcome {
	return &Outcome{
		Threshold:    threshold,
		RegistryID:   registryID,
		Rejections:   []Rejection{},
		validSigners: make(map[int]struct{}),
	}
}

func (o *Outcome) reject(pos int, claimed []byte, reason RejectionKind, detail string) {
	o.Rejections = append(o.Rejections, Rejection{
		Position:         pos,
		ClaimedPublicKey: append([]byte(nil), claimed...),
		Reason:           reason,
		Detail:           detail,
	})
}

// Signed reports whether participant idx contributed a valid signature.
func (o *Outcome) Signed(idx int) bool {
	_, ok := o.validSigners[idx]
	return ok
}

// Count returns the number of distinct valid signers.
func (o *Outcome) Count() int {
	return len(o.validSigners)
}

// ValidSigners returns the participant indices that signed, ascending.
func (o *Outcome) ValidSigners() []int {
	signers := maps.Keys(o.validSigners)
	slices.Sort(signers)
	return signers
}

// RejectionsOf returns the rejections with the given reason, in input order.
func (o *Outcome) RejectionsOf(kind RejectionKind) []Rejection {
	var out []Rejection
	for _, r := range o.Rejections {
		if r.Reason == kind {
			out = append(out, r)
		}
	}
	return out
}

// MarshalJSON adds the ascending valid_signers list.
func (o *Outcome) MarshalJSON() ([]byte, error) {
	type outcome Outcome
	return json.Marshal(struct {
		*outcome
		ValidSigners []int `json:"valid_signers"`
	}{(*outcome)(o), o.ValidSigners()})
}

func (o *Outcome) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "authorized=%v signers=%v threshold=%d", o.Authorized, o.ValidSigners(), o.Threshold)
	for _, r := range o.Rejections {
		b.WriteString("\n  ")
		b.WriteString(r.String())
	}
	return b.String()
}
