package config

import (
	"os"
	"path"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SysConfig system settings
type SysConfig struct {
	Appid   string `yaml:"appid" env:"FLAMES_SYSTEM_APPID"`
	Workdir string `yaml:"workdir" env:"FLAMES_SYSTEM_WORKDIR"`
	Debug   bool   `yaml:"debug" env:"FLAMES_SYSTEM_DEBUG"`
}

// LogConfig logger settings
type LogConfig struct {
	Mode       string `yaml:"mode" env:"FLAMES_LOGGER_MODE"` // development | production
	FileEnable bool   `yaml:"file_enable" env:"FLAMES_LOGGER_FILE_ENABLE"`
	Filename   string `yaml:"filename" env:"FLAMES_LOGGER_FILENAME"` // defaults to <workdir>/logs/flames.log
}

// ValidationConfig controls how inbound documents are checked
type ValidationConfig struct {
	// StrictTypes disables string-to-number and string-to-bool coercion.
	StrictTypes bool `yaml:"strict_types" env:"FLAMES_VALIDATION_STRICT_TYPES"`
	// Workers bounds concurrent validation of import batches.
	Workers int `yaml:"workers" env:"FLAMES_VALIDATION_WORKERS"`
}

type AppConfig struct {
	System     SysConfig        `yaml:"system"`
	Logger     LogConfig        `yaml:"logger"`
	Validation ValidationConfig `yaml:"validation"`
}

func (c *AppConfig) GetLogDir() string {
	return path.Join(c.System.Workdir, "logs")
}

// DefaultAppConfig returns the built-in configuration
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:   "flames",
			Workdir: "/var/flames",
			Debug:   false,
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
		},
		Validation: ValidationConfig{
			StrictTypes: false,
			Workers:     4,
		},
	}
}

// LoadConfig reads the yaml file at cfile (when it exists) over the defaults,
// then applies FLAMES_* environment overrides.
func LoadConfig(cfile string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if cfile != "" {
		data, err := os.ReadFile(cfile)
		switch {
		case os.IsNotExist(err):
			// fall back to defaults
		case err != nil:
			return nil, errors.Wrapf(err, "read config %s", cfile)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrapf(err, "parse config %s", cfile)
			}
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = path.Join(cfg.GetLogDir(), "flames.log")
	}
	if cfg.Validation.Workers <= 0 {
		cfg.Validation.Workers = 1
	}
	return cfg, nil
}
