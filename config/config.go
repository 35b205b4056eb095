// Package config is for settings shared by all the tools. They are
// unmarshalled from Viper, which looks at PDBTOOLS_* environment
// variables and an optional pdbtools.yaml.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct
type Config struct {
	// where debug logging goes: "" throws it away, "stdout", or a file name
	Log string `mapstructure:"log"`

	// directory for the files written by splitseg
	OutDir string `mapstructure:"outdir"`

	// memory map regular input files instead of reading them
	Mmap bool `mapstructure:"mmap"`

	// look for gzip compressed input and decompress it
	Gunzip bool `mapstructure:"gunzip"`
}

const envPrefix = "PDBTOOLS"

// SetDefaults puts our defaults into a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log", "")
	v.SetDefault("outdir", ".")
	v.SetDefault("mmap", true)
	v.SetDefault("gunzip", true)
}

// New returns a Config populated from v. If v is nil, we make one
// which reads the environment and pdbtools.yaml from the working
// directory or $HOME/.config/pdbtools. Not having a settings file
// is fine.
func New(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
		v.SetConfigName("pdbtools")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "pdbtools"))
		}
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.New("reading settings: " + err.Error())
			}
		}
	}
	SetDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.New("unable to decode settings: " + err.Error())
	}
	return &c, nil
}

// Default is the configuration without any file or environment.
// Tests use it.
func Default() *Config {
	c, err := New(viper.New())
	if err != nil {
		panic("programming bug: " + err.Error())
	}
	return c
}
