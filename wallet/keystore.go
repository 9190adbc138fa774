package wallet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chinmay1088/fuelkit/crypto"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrKeystoreExists   = errors.New("keystore already exists")
	ErrKeystoreNotFound = errors.New("keystore not found")
)

// Keystore is a password protected private key on disk
type Keystore struct {
	path string
}

func NewKeystore(path string) *Keystore {
	return &Keystore{path: path}
}

func (k *Keystore) Path() string {
	return k.path
}

// Exists reports whether the keystore file is present
func (k *Keystore) Exists() bool {
	_, err := os.Stat(k.path)
	return err == nil
}

// Save encrypts privateKey with password. It refuses to overwrite an
// existing keystore.
func (k *Keystore) Save(privateKey, password string) error {
	if k.Exists() {
		return fmt.Errorf("%w at %s", ErrKeystoreExists, k.path)
	}

	vault, err := crypto.NewVault(privateKey, password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	data, err := json.MarshalIndent(vault, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vault: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(k.path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(k.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write keystore: %w", err)
	}
	return nil
}

// Load decrypts the stored private key
func (k *Keystore) Load(password string) (string, error) {
	data, err := os.ReadFile(k.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w at %s", ErrKeystoreNotFound, k.path)
		}
		return "", fmt.Errorf("failed to read keystore: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return "", fmt.Errorf("failed to parse keystore: %w", err)
	}

	return vault.Decrypt(password)
}
