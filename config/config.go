package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "MOVIESHELF"

	configName = ".movieShelf"
	configType = "yaml"
	minWidth   = 40
)

type Config struct {
	UIWidth          int    `mapstructure:"ui_width"`
	HeaderText       string `mapstructure:"header_text"`
	DefaultDirectory string `mapstructure:"default_directory"`
	Plain            bool   `mapstructure:"plain"`
	ClearScreen      bool   `mapstructure:"clear_screen"`

	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
}

func DefaultConfig() *Config {
	return &Config{
		UIWidth:          135,
		HeaderText:       "Movie Database Manager",
		DefaultDirectory: ".",
		ClearScreen:      true,
		LogLevel:         "info",
		LogFile:          filepath.Join(os.TempDir(), "movieShelf.log"),
		LogMaxSizeMB:     5,
		LogMaxBackups:    3,
	}
}

// Load reads .env, then the config file, then MOVIESHELF_* environment
// variables, each overriding the defaults before it. An empty cfgFile
// searches $HOME and the working directory for .movieShelf.yaml; a missing
// file there is not an error.
func Load(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to load .env")
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())

	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to expand config path %s", cfgFile)
		}
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to find home directory")
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType(configType)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config")
		}
	} else {
		logrus.WithField("file", v.ConfigFileUsed()).Debug("config loaded")
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.DefaultDirectory, err = expand(cfg.DefaultDirectory); err != nil {
		return nil, err
	}
	if cfg.LogFile, err = expand(cfg.LogFile); err != nil {
		return nil, err
	}

	return cfg, nil
}

func expand(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to expand %s", path)
	}
	return expanded, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("ui_width", cfg.UIWidth)
	v.SetDefault("header_text", cfg.HeaderText)
	v.SetDefault("default_directory", cfg.DefaultDirectory)
	v.SetDefault("plain", cfg.Plain)
	v.SetDefault("clear_screen", cfg.ClearScreen)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_file", cfg.LogFile)
	v.SetDefault("log_max_size_mb", cfg.LogMaxSizeMB)
	v.SetDefault("log_max_backups", cfg.LogMaxBackups)
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	v := viper.New()
	v.SetConfigType(configType)
	v.Set("ui_width", cfg.UIWidth)
	v.Set("header_text", cfg.HeaderText)
	v.Set("default_directory", cfg.DefaultDirectory)
	v.Set("plain", cfg.Plain)
	v.Set("clear_screen", cfg.ClearScreen)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_file", cfg.LogFile)
	v.Set("log_max_size_mb", cfg.LogMaxSizeMB)
	v.Set("log_max_backups", cfg.LogMaxBackups)

	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "failed to write config %s", path)
	}
	return nil
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find home directory")
	}
	return filepath.Join(home, configName+"."+configType), nil
}

func CreateDefaultConfig(path string) error {
	return Save(DefaultConfig(), path)
}

func Validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	if cfg.UIWidth < minWidth {
		return errors.Errorf("invalid ui width %d: must be at least %d", cfg.UIWidth, minWidth)
	}
	if cfg.LogMaxSizeMB < 1 {
		return errors.Errorf("invalid log max size: %d", cfg.LogMaxSizeMB)
	}
	if cfg.LogMaxBackups < 0 {
		return errors.Errorf("invalid log max backups: %d", cfg.LogMaxBackups)
	}
	if cfg.DefaultDirectory != "" {
		info, err := os.Stat(cfg.DefaultDirectory)
		if err != nil {
			return errors.Wrap(err, "invalid default directory")
		}
		if !info.IsDir() {
			return errors.Errorf("invalid default directory: %s is not a directory", cfg.DefaultDirectory)
		}
	}
	return nil
}
