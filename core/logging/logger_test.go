package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0chain/ecdsa-multisig/core/viper"
)

func TestInitLogging(t *testing.T) {
	tests := []struct {
		name string
		mode string
	}{
		{
			name: "Test_InitLogging_testing_mode_OK",
			mode: "testing",
		},
		{
			name: "Test_InitLogging_development_mode_OK",
			mode: "development",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			viper.Set("logging.dir", dir)
			viper.Set("logging.level", "debug")
			t.Cleanup(func() {
				viper.Set("logging.dir", "")
				Logger = zap.NewNop()
				Audit = zap.NewNop()
			})

			InitLogging(tt.mode)
			Logger.Info("hello", zap.String("mode", tt.mode))
			Audit.Debug("rejection", zap.Int("position", 1))
			Sync()

			data, err := os.ReadFile(filepath.Join(dir, "multisig.log"))
			require.NoError(t, err)
			assert.Contains(t, string(data), "hello")

			data, err = os.ReadFile(filepath.Join(dir, "audit.log"))
			require.NoError(t, err)
			assert.Contains(t, string(data), "rejection")
		})
	}
}

func Test_getEncoder(t *testing.T) {
	t.Parallel()

	cfgUnknown := zap.NewProductionConfig()
	cfgUnknown.Encoding = ""

	tests := []struct {
		name      string
		conf      zap.Config
		want      zapcore.Encoder
		wantPanic bool
	}{
		{
			name:      "Test_getEncoder_Panic",
			conf:      cfgUnknown,
			wantPanic: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			defer func() {
				got := recover()
				if (got != nil) != tt.wantPanic {
					t.Errorf("getEncoder() want panic  = %v, but got = %v", tt.wantPanic, got)
				}
			}()

			if got := getEncoder(tt.conf); !assert.Equal(t, got, tt.want) {
				t.Errorf("getEncoder() = %v, want %v", got, tt.want)
			}
		})
	}
}
