package multisig

import (
	"errors"

	"github.com/0chain/ecdsa-multisig/core/common"
)

var (
	// ErrThresholdExceedsCapacity - more signatures required than participants allowed
	ErrThresholdExceedsCapacity = common.NewError("threshold_exceeds_capacity", "threshold exceeds capacity")

	// ErrInvalidThreshold - threshold below one
	ErrInvalidThreshold = common.NewError("invalid_threshold", "threshold must be at least 1")

	// ErrInvalidCapacity - capacity below one
	ErrInvalidCapacity = common.NewError("invalid_capacity", "capacity must be at least 1")

	// ErrRegistryFull - enrollment beyond capacity
	ErrRegistryFull = common.NewError("registry_full", "registry is full")

	// ErrDuplicateKey - the key is already enrolled
	ErrDuplicateKey = common.NewError("duplicate_key", "public key already enrolled")

	// ErrHashMismatch - a bundle's message does not hash to its recorded hash
	ErrHashMismatch = common.NewError("hash_mismatch", "message does not match hash")

	// ErrUnknownBundleFormat - the bundle file extension names no known codec
	ErrUnknownBundleFormat = common.NewError("unknown_bundle_format", "unknown bundle format")
)

// IsConfigError reports whether err was caused by invalid registry
// construction parameters.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrThresholdExceedsCapacity) ||
		errors.Is(err, ErrInvalidThreshold) ||
		errors.Is(err, ErrInvalidCapacity)
}
