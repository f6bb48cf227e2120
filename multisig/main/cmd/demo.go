package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/0chain/ecdsa-multisig/core/common"
	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/multisig"
)

// ErrDemoFailed - a demo verification did not decide as expected
var ErrDemoFailed = common.NewError("demo_failed", "unexpected verification result")

func newDemoCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "demo",
		Short: "Run an M-of-N signing round with freshly generated keys",
		Long: `Generate keys for every participant, enroll them, let the first
--threshold participants sign the message and verify with exactly the
threshold, one signature short of it, and with every participant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, _ := cmd.Flags().GetInt("threshold")
			participants, _ := cmd.Flags().GetInt("participants")
			message, _ := cmd.Flags().GetString("message")

			verifier := multisig.NewThresholdVerifier(conf.Multisig.VerifierOptions()...)
			return runDemo(cmd.OutOrStdout(), verifier, threshold, participants, message)
		},
	}
	c.Flags().Int("threshold", 2, "signatures required")
	c.Flags().Int("participants", 3, "participants to generate")
	c.Flags().String("message", "This is a test message", "message to sign")
	return c
}

func runDemo(w io.Writer, verifier *multisig.ThresholdVerifier, threshold, participants int, message string) error {
	registry, err := multisig.NewRegistry(threshold, participants)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generating keypairs for %d participants...\n", participants)
	keys := make([]encryption.KeyPair, participants)
	for i := range keys {
		if keys[i], err = encryption.GenerateKeyPair(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "\nAdding participants...")
	for _, kp := range keys {
		idx, err := registry.Enroll(kp.PublicKey)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Participant %d: %s\n", idx, kp.PublicKey.Short())
	}

	fmt.Fprintf(w, "\nMessage to sign: %s\n", message)
	hash := encryption.HashText(message)

	fmt.Fprintln(w, "\nCollecting signatures...")
	entries, err := collectSignatures(keys, hash, verifier.Encoding())
	if err != nil {
		return err
	}
	for i, e := range entries {
		fmt.Fprintf(w, "Participant %d signed the message (%x)\n", i, e.Signature[:4])
	}

	check := func(n int, want bool) error {
		outcome := verifier.Verify(registry, hash, entries[:n])
		result := "Failed"
		if outcome.Authorized {
			result = "Success"
		}
		fmt.Fprintf(w, "Message verification with %d signatures: %s\n", n, result)
		if outcome.Authorized != want {
			return common.NewErrorf(ErrDemoFailed.Code, "%d of %d signatures: authorized=%v", n, threshold, outcome.Authorized)
		}
		return nil
	}

	fmt.Fprintf(w, "\nVerifying message with %d signatures...\n", threshold)
	if err := check(threshold, true); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nVerifying message with %d signatures...\n", threshold-1)
	if err := check(threshold-1, false); err != nil {
		return err
	}
	if participants > threshold {
		fmt.Fprintln(w, "\nAdding the remaining signatures...")
		if err := check(participants, true); err != nil {
			return err
		}
	}
	return nil
}

// collectSignatures has every participant sign hash concurrently. Entries
// are in participant order.
func collectSignatures(keys []encryption.KeyPair, hash encryption.MessageHash, enc encryption.SignatureEncoding) ([]multisig.SignatureEntry, error) {
	entries := make([]multisig.SignatureEntry, len(keys))
	var g errgroup.Group
	for i := range keys {
		i := i
		g.Go(func() error {
			sig, err := encryption.SignHash(hash, keys[i].PrivateKey)
			if err != nil {
				return err
			}
			entries[i] = multisig.NewSignatureEntry(sig, keys[i].PublicKey, enc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
