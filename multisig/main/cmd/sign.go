package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/core/logging"
	"github.com/0chain/ecdsa-multisig/multisig"
)

func newSignCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message hash",
		Long: `Sign the SHA-256 hash of --message, or --hash directly, with the key
file's private key. With --bundle the signature is appended to the bundle
file, which is created when missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, _ := cmd.Flags().GetString("keys")
			bundlePath, _ := cmd.Flags().GetString("bundle")

			scheme, err := readKeys(keys)
			if err != nil {
				return err
			}
			hash, message, err := messageHash(cmd)
			if err != nil {
				return err
			}
			sig, err := scheme.Sign(hash)
			if err != nil {
				return err
			}

			if bundlePath != "" {
				bundle, err := openBundle(bundlePath, message, hash.Hex())
				if err != nil {
					return err
				}
				bundle.Add(sig, scheme.PublicKey())
				if err := multisig.SaveBundle(bundlePath, bundle); err != nil {
					return err
				}
				logging.Logger.Info("signature added to bundle",
					zap.String("bundle", bundlePath),
					zap.String("hash", hash.Hex()),
					zap.Int("entries", len(bundle.Entries)))
			}

			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
	c.Flags().String("keys", "", "key file written by keygen")
	c.Flags().String("message", "", "message text")
	c.Flags().String("hash", "", "hex SHA-256 hash to sign instead of a message")
	c.Flags().String("bundle", "", "bundle file (.json or .msgpack) to append the signature to")
	_ = c.MarkFlagRequired("keys")
	return c
}

// openBundle loads the bundle at path, or starts one when the file does not
// exist. An existing bundle must be for the same hash.
func openBundle(path, message, hash string) (*multisig.Bundle, error) {
	bundle, err := multisig.LoadBundle(path)
	if errors.Is(err, os.ErrNotExist) {
		if message == "" {
			h, err := encryption.DecodeMessageHash(hash)
			if err != nil {
				return nil, err
			}
			return multisig.NewHashBundle(h), nil
		}
		return multisig.NewBundle(message), nil
	}
	if err != nil {
		return nil, err
	}
	existing, err := bundle.MessageHash()
	if err != nil {
		return nil, err
	}
	if existing.Hex() != hash {
		return nil, errors.Wrapf(multisig.ErrHashMismatch, "bundle %s is for hash %s", path, existing.Hex())
	}
	if bundle.Message == "" {
		bundle.Message = message
	}
	return bundle, nil
}
