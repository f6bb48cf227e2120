package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0chain/ecdsa-multisig/core/logging"
	"github.com/0chain/ecdsa-multisig/multisig"
)

func newEnrollCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll a public key into a group manifest",
		Long: `Enroll a public key into the group manifest, creating the manifest with
--threshold and --capacity (or the configured values) when it does not exist.
Prints the participant index.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("manifest")
			key, _ := cmd.Flags().GetString("key")

			manifest, err := multisig.LoadManifest(path)
			if errors.Is(err, os.ErrNotExist) {
				manifest = &multisig.Manifest{
					Threshold: conf.Multisig.Threshold,
					Capacity:  conf.Multisig.Capacity,
				}
				if cmd.Flags().Changed("threshold") {
					manifest.Threshold, _ = cmd.Flags().GetInt("threshold")
				}
				if cmd.Flags().Changed("capacity") {
					manifest.Capacity, _ = cmd.Flags().GetInt("capacity")
				}
			} else if err != nil {
				return err
			}

			registry, err := manifest.Registry()
			if err != nil {
				return err
			}
			idx, err := registry.EnrollHex(key)
			if err != nil {
				return err
			}
			if err := multisig.SaveManifest(path, multisig.ManifestFromRegistry(registry)); err != nil {
				return err
			}

			p, _ := registry.Participant(idx)
			logging.Logger.Info("participant enrolled",
				zap.String("registry", registry.ID()),
				zap.Int("index", idx),
				zap.String("client_id", p.ID))
			fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}
	c.Flags().String("manifest", "", "group manifest file (yaml)")
	c.Flags().String("key", "", "hex public key, compressed or uncompressed")
	c.Flags().Int("threshold", 0, "signatures required, for a new manifest")
	c.Flags().Int("capacity", 0, "maximum participants, for a new manifest")
	_ = c.MarkFlagRequired("manifest")
	_ = c.MarkFlagRequired("key")
	return c
}
