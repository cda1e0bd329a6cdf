package settings

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const envPrefix = "QUEUE"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file overrides it.
func Default() Config {
	return Config{
		Queue: Queue{
			InitialCapacity: 64,
			BatchSize:       512,
			Workers:         1,
		},
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     7,
			MaxSize:    100,
		},
	}
}

// Load reads the configuration file at path, applies QUEUE_* environment
// overrides on top of Default and validates the result.
// An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("queue.timeout_ms", def.Queue.TimeoutMs)
	v.SetDefault("queue.initial_capacity", def.Queue.InitialCapacity)
	v.SetDefault("queue.batch_size", def.Queue.BatchSize)
	v.SetDefault("queue.workers", def.Queue.Workers)

	v.SetDefault("logger.log_level", def.Logger.LogLevel)
	v.SetDefault("logger.file_log_name", def.Logger.FileLogName)
	v.SetDefault("logger.max_backups", def.Logger.MaxBackups)
	v.SetDefault("logger.max_age", def.Logger.MaxAge)
	v.SetDefault("logger.max_size", def.Logger.MaxSize)
	v.SetDefault("logger.compress", def.Logger.Compress)
}
