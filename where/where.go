// Package where resolves the per-user directories malkit writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/malkit/malkit/constant"
	"github.com/malkit/malkit/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "MALKIT_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding malkit.toml and the logs.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// ConfigFile is the path viper reads and writes.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}

	return mkdir(filepath.Join(base, constant.App))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Queries is the search history store used for completion suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
