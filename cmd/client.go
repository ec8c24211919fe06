package cmd

import (
	"errors"

	"github.com/malkit/malkit/auth"
	"github.com/malkit/malkit/config"
	"github.com/malkit/malkit/key"
	"github.com/malkit/malkit/mal"
	"github.com/spf13/viper"
)

var errNoAccount = errors.New("no account configured")

// clientConfig builds the client settings from the loaded configuration.
func clientConfig(username, password string) mal.Config {
	cfg := mal.DefaultConfig(username, password)
	cfg.BaseURL = viper.GetString(key.MalBaseURL)
	cfg.Timeout = config.Timeout()
	cfg.Fingerprint = viper.GetBool(key.NetworkTLSFingerprint)
	cfg.AllowInsecure = viper.GetBool(key.NetworkAllowInsecure)
	cfg.ReconnectOnNoContent = viper.GetBool(key.MalReconnectOnNoContent)
	return cfg
}

// newClient signs in as the configured user with the password from the keyring.
func newClient() (*mal.Client, error) {
	username := viper.GetString(key.MalUsername)
	if username == "" {
		return nil, errNoAccount
	}

	password, err := auth.Password(username)
	if err != nil {
		return nil, err
	}

	return mal.New(clientConfig(username, password))
}
