package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/aios/internal/coreconfig"
	"github.com/thoreinstein/aios/internal/errors"
	"github.com/thoreinstein/aios/internal/paths"
)

// EnvPrefix prefixes environment overrides, e.g. AIOS_DEFAULTS_IDES.
const EnvPrefix = "AIOS"

// CurrentVersion is the only settings format version understood.
const CurrentVersion = 1

// Config represents the installer settings file.
type Config struct {
	Version  int      `mapstructure:"version" yaml:"version"`
	Defaults Defaults `mapstructure:"defaults" yaml:"defaults"`
}

// Defaults are the fallbacks for options nobody chose explicitly.
type Defaults struct {
	UserProfile string   `mapstructure:"user_profile" yaml:"user_profile,omitempty"`
	ProjectType string   `mapstructure:"project_type" yaml:"project_type,omitempty"`
	IDEs        []string `mapstructure:"ides" yaml:"ides,omitempty"`
	AIOSVersion string   `mapstructure:"aios_version" yaml:"aios_version,omitempty"`
}

// InstallDefaults converts the settings into configurator defaults.
// Unset settings keep the built-in defaults.
func (c *Config) InstallDefaults() coreconfig.Defaults {
	base := coreconfig.DefaultValues()
	if c == nil {
		return base
	}
	return base.Merge(coreconfig.Defaults{
		ProjectType:  c.Defaults.ProjectType,
		SelectedIDEs: c.Defaults.IDEs,
		UserProfile:  c.Defaults.UserProfile,
		AIOSVersion:  c.Defaults.AIOSVersion,
	})
}

// Init resets the global viper instance and registers search paths,
// environment binding and defaults. Call it once before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.AppConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("defaults.user_profile", "")
	viper.SetDefault("defaults.project_type", "")
	viper.SetDefault("defaults.ides", []string{})
	viper.SetDefault("defaults.aios_version", "")
}

// Load reads the settings file.
// With an explicit path the file must exist. Otherwise a missing file in
// the search paths means built-in defaults. The result is validated.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// no settings file; built-in defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		case path != "" && isNotExist(err):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// ConfigFileUsed returns the settings file Load read, if any.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
