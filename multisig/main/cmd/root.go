package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0chain/ecdsa-multisig/config"
	"github.com/0chain/ecdsa-multisig/core/logging"
	"github.com/0chain/ecdsa-multisig/core/viper"
)

// conf is loaded before any subcommand runs.
var conf *config.Config

var flagKeys = map[string]string{
	"log-level":          "logging.level",
	"log-dir":            "logging.dir",
	"console":            "logging.console",
	"signature-encoding": "multisig.signature_encoding",
}

// Execute runs the multisig command line tool.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "multisig",
		Short: "M-of-N secp256k1 threshold signatures",
		Long: `multisig generates secp256k1 keys, signs message hashes and decides
whether enough distinct enrolled participants signed a message.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) { logging.Sync() },
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "configuration file (yaml)")
	flags.String("log-level", "info", "log level")
	flags.String("log-dir", "log", "directory of the log files")
	flags.Bool("console", false, "also log to stdout")
	flags.Bool("development", false, "development logging")
	flags.String("signature-encoding", "raw", "signature encoding, raw or der")

	rootCmd.AddCommand(
		newKeygenCmd(),
		newHashCmd(),
		newSignCmd(),
		newEnrollCmd(),
		newVerifyCmd(),
		newDemoCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	file, err := flags.GetString("config")
	if err != nil {
		return err
	}
	c, err := config.Load(file)
	if err != nil {
		return err
	}
	conf = c

	mode := "production"
	if dev, _ := flags.GetBool("development"); dev {
		mode = "development"
	}
	logging.InitLogging(mode)
	logging.Logger.Debug("configuration loaded",
		zap.String("file", file),
		zap.Int("threshold", conf.Multisig.Threshold),
		zap.Int("capacity", conf.Multisig.Capacity),
		zap.String("signature_encoding", conf.Multisig.SignatureEncoding))
	return nil
}
