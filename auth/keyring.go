// Package auth keeps service passwords in the system keyring, keyed by username.
package auth

import (
	"errors"
	"fmt"

	"github.com/malkit/malkit/constant"
	"github.com/zalando/go-keyring"
)

const service = constant.App + "-myanimelist"

// ErrNoPassword is returned when nothing is stored for the user.
var ErrNoPassword = errors.New("no password stored")

func SetPassword(username, password string) error {
	if err := keyring.Set(service, username, password); err != nil {
		return fmt.Errorf("store password for %s: %w", username, err)
	}
	return nil
}

func Password(username string) (string, error) {
	password, err := keyring.Get(service, username)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%s: %w", username, ErrNoPassword)
	}
	if err != nil {
		return "", fmt.Errorf("read password for %s: %w", username, err)
	}
	return password, nil
}

// DeletePassword forgets the stored password. Deleting a missing entry is not an error.
func DeletePassword(username string) error {
	err := keyring.Delete(service, username)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete password for %s: %w", username, err)
	}
	return nil
}
