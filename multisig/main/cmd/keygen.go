package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/core/logging"
)

func newKeygenCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a secp256k1 keypair",
		Long: `Generate a secp256k1 keypair. The key file holds the public key hex on
the first line and the private key hex on the second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			scheme := encryption.NewSECP256K1Scheme()
			if err := scheme.GenerateKeys(); err != nil {
				return err
			}

			if out == "" {
				return scheme.WriteKeys(cmd.OutOrStdout())
			}
			f, err := os.OpenFile(out, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
			if err != nil {
				return err
			}
			if err := scheme.WriteKeys(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			pk := scheme.PublicKey()
			logging.Logger.Info("keypair generated", zap.String("file", out), zap.String("client_id", encryption.ClientID(pk)))
			fmt.Fprintln(cmd.OutOrStdout(), pk.Hex())
			return nil
		},
	}
	c.Flags().String("out", "", "key file to create, stdout when empty")
	return c
}

func readKeys(path string) (*encryption.SECP256K1Scheme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scheme := encryption.NewSECP256K1Scheme()
	scheme.SetSignatureEncoding(conf.Multisig.Encoding())
	if err := scheme.ReadKeys(f); err != nil {
		return nil, err
	}
	return scheme, nil
}
