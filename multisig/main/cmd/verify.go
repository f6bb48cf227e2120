package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0chain/ecdsa-multisig/core/common"
	"github.com/0chain/ecdsa-multisig/multisig"
)

// ErrNotAuthorized - too few distinct valid signers
var ErrNotAuthorized = common.NewError("not_authorized", "threshold not reached")

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify",
		Short: "Decide whether a bundle of signatures authorizes its message",
		Long: `Verify every signature of the bundle against the group manifest and
report the valid signers and the rejected entries. Exits with an error when
the threshold is not reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath, _ := cmd.Flags().GetString("manifest")
			bundlePath, _ := cmd.Flags().GetString("bundle")
			asJSON, _ := cmd.Flags().GetBool("json")

			manifest, err := multisig.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			registry, err := manifest.Registry()
			if err != nil {
				return err
			}
			bundle, err := multisig.LoadBundle(bundlePath)
			if err != nil {
				return err
			}
			hash, err := bundle.MessageHash()
			if err != nil {
				return err
			}

			verifier := multisig.NewThresholdVerifier(conf.Multisig.VerifierOptions()...)
			outcome := verifier.Verify(registry, hash, bundle.SignatureEntries())

			if asJSON {
				if err := common.WriteJSON(cmd.OutOrStdout(), outcome); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), outcome)
			}
			if !outcome.Authorized {
				return common.NewErrorf(ErrNotAuthorized.Code, "%d of %d required signers", outcome.Count(), outcome.Threshold)
			}
			return nil
		},
	}
	c.Flags().String("manifest", "", "group manifest file (yaml)")
	c.Flags().String("bundle", "", "signature bundle file (.json or .msgpack)")
	c.Flags().Bool("json", false, "print the outcome as json")
	_ = c.MarkFlagRequired("manifest")
	_ = c.MarkFlagRequired("bundle")
	return c
}
