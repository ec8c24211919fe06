// Package config registers malkit's settings with viper and loads them from
// the TOML file, the environment and the defaults, in that order of precedence.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/malkit/malkit/constant"
	"github.com/malkit/malkit/filesystem"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Write persists the current settings, creating the file on first use.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(where.ConfigFile())
	}
	return err
}

// Timeout is mal.timeout as a duration.
func Timeout() time.Duration {
	return time.Duration(viper.GetInt(key.MalTimeout)) * time.Second
}
