package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/0chain/ecdsa-multisig/core/viper"
)

var (
	// Logger is the general purpose logger. It discards everything until
	// InitLogging is called.
	Logger = zap.NewNop()

	// Audit receives one entry per verification decision and per rejected
	// signature entry.
	Audit = zap.NewNop()
)

//InitLogging - initialize the logging submodule
func InitLogging(mode string) {
	logDir := viper.GetString("logging.dir")
	if logDir == "" {
		logDir = "log"
	}
	var logWriter = getWriteSyncer(filepath.Join(logDir, "multisig.log"))
	var auditWriter = getWriteSyncer(filepath.Join(logDir, "audit.log"))

	var cfg zap.Config
	if mode != "development" {
		cfg = zap.NewProductionConfig()
		cfg.DisableCaller = true
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.NameKey = "name"
		cfg.EncoderConfig.MessageKey = "msg"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.StacktraceKey = "stacktrace"
	}
	if viper.GetBool("logging.console") {
		logWriter = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), logWriter)
	}
	if level := viper.GetString("logging.level"); level != "" {
		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			cfg.Level.SetLevel(zapcore.InfoLevel)
		}
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(createOptionFromCores(createZapCore(logWriter, cfg)))
	if err != nil {
		panic(err)
	}

	auditCfg := cfg
	auditCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	al, err := auditCfg.Build(createOptionFromCores(createZapCore(auditWriter, auditCfg)))
	if err != nil {
		panic(err)
	}

	Logger = l
	Audit = al
}

// Sync flushes both loggers.
func Sync() {
	_ = Logger.Sync()
	_ = Audit.Sync()
}

func createZapCore(ws zapcore.WriteSyncer, conf zap.Config) zapcore.Core {
	enc := getEncoder(conf)
	return zapcore.NewCore(enc, ws, conf.Level)
}

func createOptionFromCores(cores ...zapcore.Core) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(cores...)
	})
}

func getEncoder(conf zap.Config) zapcore.Encoder {
	var enc zapcore.Encoder
	switch conf.Encoding {
	case "json":
		enc = zapcore.NewJSONEncoder(conf.EncoderConfig)
	case "console":
		enc = zapcore.NewConsoleEncoder(conf.EncoderConfig)
	default:
		panic("unknown encoding")
	}
	return enc
}

func getWriteSyncer(logName string) zapcore.WriteSyncer {
	var ioWriter = &lumberjack.Logger{
		Filename:   logName,
		MaxSize:    100, // MB
		MaxBackups: 5,   // number of backups
		MaxAge:     28,  //days
		LocalTime:  false,
		Compress:   false, // disabled by default
	}
	return zapcore.AddSync(ioWriter)
}
