package config

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "dbmeta"

// StorePassword saves the connection password in the OS keyring under the
// connection ID. Connections without a password are left alone.
func StorePassword(conn Connection) error {
	if conn.Password == "" {
		return nil
	}
	if conn.ID == "" {
		return errors.New("store password: connection has no id")
	}
	if err := keyring.Set(keyringService, conn.ID, conn.Password); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}

// ResolvePassword fills conn.Password from the keyring when it is empty.
// A missing keyring entry is not an error.
func ResolvePassword(conn *Connection) error {
	if conn.Password != "" || conn.ID == "" {
		return nil
	}
	secret, err := keyring.Get(keyringService, conn.ID)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load password: %w", err)
	}
	conn.Password = secret
	return nil
}

// DeletePassword removes a stored password. A missing entry is not an error.
func DeletePassword(id string) error {
	if err := keyring.Delete(keyringService, id); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete password: %w", err)
	}
	return nil
}
