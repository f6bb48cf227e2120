package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	spf13viper "github.com/spf13/viper"

	"github.com/0chain/ecdsa-multisig/core/common"
	"github.com/0chain/ecdsa-multisig/core/encryption"
	"github.com/0chain/ecdsa-multisig/core/viper"
	"github.com/0chain/ecdsa-multisig/multisig"
)

// EnvPrefix prefixes environment overrides, e.g. MULTISIG_MULTISIG_THRESHOLD.
const EnvPrefix = "MULTISIG"

// ErrInvalidConfig - the loaded configuration failed validation
var ErrInvalidConfig = common.NewError("invalid_config", "invalid configuration")

var validate = validator.New()

type (
	// Config is the whole configuration of the multisig tool.
	Config struct {
		Multisig Multisig `mapstructure:"multisig"`
		Logging  Logging  `mapstructure:"logging"`
	}

	// Multisig configures the group and its verifier.
	Multisig struct {
		Threshold         int      `mapstructure:"threshold" validate:"min=1,ltefield=Capacity"`
		Capacity          int      `mapstructure:"capacity" validate:"min=1"`
		SignatureEncoding string   `mapstructure:"signature_encoding" validate:"oneof=raw der RAW DER"`
		KeyCacheSize      int      `mapstructure:"key_cache_size" validate:"min=1"`
		Participants      []string `mapstructure:"participants" validate:"max=1024,dive,hexadecimal"`
	}

	// Logging configures core/logging.
	Logging struct {
		Level   string `mapstructure:"level" validate:"oneof=debug info warn error dpanic panic fatal"`
		Console bool   `mapstructure:"console"`
		Dir     string `mapstructure:"dir" validate:"required"`
	}
)

//SetupDefaultConfig - setup the default config options that can be overridden via the config file
func SetupDefaultConfig(v *viper.Viper) {
	v.SetDefault("multisig.threshold", 2)
	v.SetDefault("multisig.capacity", 3)
	v.SetDefault("multisig.signature_encoding", "raw")
	v.SetDefault("multisig.key_cache_size", multisig.DefaultKeyCacheSize)
	v.SetDefault("multisig.participants", []string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", false)
	v.SetDefault("logging.dir", "log")
}

// Load reads the configuration into the process wide viper instance: the
// defaults, then file when it is not empty, then the environment.
func Load(file string) (*Config, error) {
	return LoadFrom(viper.Default(), file)
}

// LoadFrom is Load for a given viper instance.
func LoadFrom(v *viper.Viper, file string) (*Config, error) {
	SetupDefaultConfig(v)
	if file != "" {
		if err := v.ReadConfigFile(file); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}
	v.AutomaticEnv(EnvPrefix)

	var c Config
	hook := spf13viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks field ranges and the threshold/capacity relationship.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	return nil
}

// Encoding returns the configured signature encoding.
func (m Multisig) Encoding() encryption.SignatureEncoding {
	enc, err := encryption.ParseSignatureEncoding(m.SignatureEncoding)
	if err != nil {
		return encryption.SignatureRaw
	}
	return enc
}

// NewRegistry creates the configured group and enrolls the configured
// participants in order.
func (m Multisig) NewRegistry() (*multisig.Registry, error) {
	manifest := multisig.Manifest{
		Threshold:    m.Threshold,
		Capacity:     m.Capacity,
		Participants: m.Participants,
	}
	return manifest.Registry()
}

// VerifierOptions returns the verifier settings of the configuration.
func (m Multisig) VerifierOptions() []multisig.Option {
	return []multisig.Option{
		multisig.WithSignatureEncoding(m.Encoding()),
		multisig.WithKeyCacheSize(m.KeyCacheSize),
	}
}
