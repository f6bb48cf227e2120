package multisig

import (
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"

	"github.com/0chain/ecdsa-multisig/core/encryption"
)

// Participant is an enrolled member of a group.
type Participant struct {
	Index     int                  `json:"index" yaml:"index"`
	PublicKey encryption.PublicKey `json:"-" yaml:"-"`
	ID        string               `json:"id" yaml:"id"`

	key *secp256k1.PublicKey
}

// Registry holds the group configuration and its participants. The
// participant list is append only. Reads may run concurrently, Enroll is
// serialized against every other access.
type Registry struct {
	id        string
	threshold int
	capacity  int

	mutex        sync.RWMutex
	participants []*Participant
	byKey        map[encryption.PublicKey]int
}

// NewRegistry creates an empty registry requiring threshold signatures out
// of at most capacity participants.
func NewRegistry(threshold, capacity int) (*Registry, error) {
	return newRegistry(uuid.New().String(), threshold, capacity)
}

func newRegistry(id string, threshold, capacity int) (*Registry, error) {
	if threshold < 1 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "threshold %d", threshold)
	}
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	if threshold > capacity {
		return nil, errors.Wrapf(ErrThresholdExceedsCapacity, "threshold %d, capacity %d", threshold, capacity)
	}
	return &Registry{
		id:           id,
		threshold:    threshold,
		capacity:     capacity,
		participants: make([]*Participant, 0, capacity),
		byKey:        make(map[encryption.PublicKey]int, capacity),
	}, nil
}

// Enroll appends the key and returns its index.
func (r *Registry) Enroll(publicKey encryption.PublicKey) (int, error) {
	key, err := publicKey.ECPublicKey()
	if err != nil {
		return -1, err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.byKey[publicKey]; ok {
		return -1, errors.Wrap(ErrDuplicateKey, publicKey.Short())
	}
	if len(r.participants) == r.capacity {
		return -1, errors.Wrapf(ErrRegistryFull, "capacity %d", r.capacity)
	}

	idx := len(r.participants)
	r.participants = append(r.participants, &Participant{
		Index:     idx,
		PublicKey: publicKey,
		ID:        encryption.ClientID(publicKey),
		key:       key,
	})
	r.byKey[publicKey] = idx
	return idx, nil
}

// EnrollBytes decodes a 33, 64 or 65 byte key and enrolls it.
func (r *Registry) EnrollBytes(publicKey []byte) (int, error) {
	pk, err := encryption.ParsePublicKey(publicKey)
	if err != nil {
		return -1, err
	}
	return r.Enroll(pk)
}

// EnrollHex decodes a hex key and enrolls it.
func (r *Registry) EnrollHex(publicKey string) (int, error) {
	pk, err := encryption.DecodePublicKey(publicKey)
	if err != nil {
		return -1, err
	}
	return r.Enroll(pk)
}

// Lookup returns the index of an enrolled key.
func (r *Registry) Lookup(publicKey encryption.PublicKey) (int, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	idx, ok := r.byKey[publicKey]
	return idx, ok
}

func (r *Registry) ID() string {
	return r.id
}

func (r *Registry) Threshold() int {
	return r.threshold
}

func (r *Registry) Capacity() int {
	return r.capacity
}

// Size returns the number of enrolled participants.
func (r *Registry) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.participants)
}

func (r *Registry) IsFull() bool {
	return r.Size() == r.capacity
}

// Participant returns the participant at index i.
func (r *Registry) Participant(i int) (Participant, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if i < 0 || i >= len(r.participants) {
		return Participant{}, false
	}
	return *r.participants[i], true
}

// Participants returns a copy of the participant list in enrollment order.
func (r *Registry) Participants() []Participant {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]Participant, len(r.participants))
	for i, p := range r.participants {
		out[i] = *p
	}
	return out
}

// PublicKeys returns the enrolled keys in enrollment order.
func (r *Registry) PublicKeys() []encryption.PublicKey {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]encryption.PublicKey, len(r.participants))
	for i, p := range r.participants {
		out[i] = p.PublicKey
	}
	return out
}

// snapshot is a consistent view of the registry for a single verification.
// Participants are never modified after enrollment; the key index is cloned.
type snapshot struct {
	id           string
	threshold    int
	participants []*Participant
	byKey        map[encryption.PublicKey]int
}

func (r *Registry) snapshot() snapshot {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return snapshot{
		id:           r.id,
		threshold:    r.threshold,
		participants: r.participants[:len(r.participants):len(r.participants)],
		byKey:        maps.Clone(r.byKey),
	}
}
