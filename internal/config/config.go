package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RyanSchlenz/CSV-Email-Merger/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	File1Path   string      `yaml:"file1_path" mapstructure:"file1_path"`
	File2Path   string      `yaml:"file2_path" mapstructure:"file2_path"`
	UpdatedPath string      `yaml:"updated_path" mapstructure:"updated_path"`
	Input       InputConfig `yaml:"input" mapstructure:"input"`
	Store       StoreConfig `yaml:"store" mapstructure:"store"`
	Log         LogConfig   `yaml:"log" mapstructure:"log"`
}

// InputConfig configures how input files are read.
type InputConfig struct {
	// SecondarySkipRows is the number of metadata lines above the directory
	// export's header.
	SecondarySkipRows int `yaml:"secondary_skip_rows" mapstructure:"secondary_skip_rows"`
}

// StoreConfig configures run history persistence. An empty driver disables it.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // "", "sqlite" or "postgres"
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment. With an empty path it
// looks for config.{json,yaml,toml,...} in the working directory. The file is
// required.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	subject := path
	if subject == "" {
		subject = "config"
	}

	// Environment
	v.SetEnvPrefix("MERGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("file1_path", "")
	v.SetDefault("file2_path", "")
	v.SetDefault("updated_path", "")
	v.SetDefault("input.secondary_skip_rows", 1)
	v.SetDefault("store.driver", "")
	v.SetDefault("store.database_url", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, model.NewError(model.ErrConfigNotFound, subject, nil)
		}
		return nil, model.NewError(model.ErrConfigParse, subject, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, model.NewError(model.ErrConfigParse, v.ConfigFileUsed(), err)
	}

	zap.L().Debug("config: loaded", zap.String("file", v.ConfigFileUsed()))
	return &cfg, nil
}

// Validate checks that every required file path is set and names all of the
// missing ones.
func (c *Config) Validate() error {
	var missing []string
	if c.File1Path == "" {
		missing = append(missing, "file1_path")
	}
	if c.File2Path == "" {
		missing = append(missing, "file2_path")
	}
	if c.UpdatedPath == "" {
		missing = append(missing, "updated_path")
	}
	if len(missing) > 0 {
		return model.MissingError(model.ErrConfigIncomplete, "config", missing)
	}
	if c.Input.SecondarySkipRows < 0 {
		return model.NewError(model.ErrConfigParse, "config",
			eris.Errorf("input.secondary_skip_rows must not be negative, got %d", c.Input.SecondarySkipRows))
	}
	switch c.Store.Driver {
	case "", "sqlite", "postgres":
	default:
		return model.NewError(model.ErrConfigParse, "config",
			eris.Errorf("unknown store driver %q", c.Store.Driver))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
