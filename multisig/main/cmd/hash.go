package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/0chain/ecdsa-multisig/core/common"
	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/multisig"
)

func newHashCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "hash",
		Short: "Print the SHA-256 hash participants sign for a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			message, _ := cmd.Flags().GetString("message")
			fmt.Fprintln(cmd.OutOrStdout(), encryption.HashText(message).Hex())
			return nil
		},
	}
	c.Flags().String("message", "", "message text")
	return c
}

// messageHash resolves the --message and --hash flags of a command.
func messageHash(cmd *cobra.Command) (encryption.MessageHash, string, error) {
	message, _ := cmd.Flags().GetString("message")
	hash, _ := cmd.Flags().GetString("hash")
	switch {
	case cmd.Flags().Changed("message") && hash != "":
		h, err := encryption.DecodeMessageHash(hash)
		if err != nil {
			return h, "", err
		}
		if encryption.HashText(message) != h {
			return h, "", errors.Wrapf(multisig.ErrHashMismatch, "--message does not hash to --hash %s", hash)
		}
		return h, message, nil
	case hash != "":
		h, err := encryption.DecodeMessageHash(hash)
		return h, "", err
	case cmd.Flags().Changed("message"):
		return encryption.HashText(message), message, nil
	default:
		return encryption.MessageHash{}, "", common.InvalidRequest("one of --message or --hash is required")
	}
}
