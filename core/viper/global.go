package viper

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var global = New()

// Default returns the process wide instance used by the package level
// functions.
func Default() *Viper {
	return global
}

func AutomaticEnv(prefix string) { global.AutomaticEnv(prefix) }

func BindPFlag(key string, flag *pflag.Flag) error { return global.BindPFlag(key, flag) }

func Get(key string) interface{} { return global.Get(key) }

func GetBool(key string) bool { return global.GetBool(key) }

func GetInt(key string) int { return global.GetInt(key) }

func GetString(key string) string { return global.GetString(key) }

func GetStringSlice(key string) []string { return global.GetStringSlice(key) }

func IsSet(key string) bool { return global.IsSet(key) }

func ReadConfigFile(path string) error { return global.ReadConfigFile(path) }

func Set(key string, val interface{}) { global.Set(key, val) }

func SetDefault(key string, val interface{}) { global.SetDefault(key, val) }

func Unmarshal(rawVal interface{}, opts ...viper.DecoderConfigOption) error {
	return global.Unmarshal(rawVal, opts...)
}

func WriteConfigFile(filename string) error { return global.WriteConfigFile(filename) }
