package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/orbitwatch/neox/errors"
)

// Save writes the configuration to the user config file,
// ~/.neox/config.toml, creating the directory if needed. The write goes
// through a temp file and rename so a failed write never corrupts an
// existing config.
func Save(cfg *Config) error {
	return SaveTo(cfg, UserConfigPath())
}

// SaveTo writes the configuration to an explicit path.
func SaveTo(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config to TOML")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		return errors.Wrapf(err, "creating config directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "config-*.toml")
	if err != nil {
		return errors.Wrap(err, "creating temp config file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "writing temp config file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "closing temp config file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replacing config file %s", path)
	}

	return nil
}

// SetValue sets a dotted key in the user config file and persists it.
// Values pass through Viper so the usual string coercion rules apply.
func SetValue(key, value string) error {
	v := GetViper()
	if !v.IsSet(key) {
		return errors.Newf("unknown configuration key %q", key)
	}

	fileViper := newFileViper()
	fileViper.Set(key, value)

	var cfg Config
	if err := fileViper.Unmarshal(&cfg); err != nil {
		return errors.Wrapf(err, "applying %s=%s", key, value)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := Save(&cfg); err != nil {
		return err
	}

	Reset()
	return nil
}

// newFileViper builds a viper over just the user config file plus
// defaults, so a SetValue round-trip does not bake env overrides into the
// persisted file.
func newFileViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(UserConfigPath())
	v.SetConfigType("toml")
	v.ReadInConfig() // missing file is fine, defaults apply
	return v
}
