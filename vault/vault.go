// Package vault stores the application's named credentials in the OS
// keychain (Keychain on macOS, Credential Manager on Windows, Secret
// Service on Linux).
//
// Only a fixed allowlist of key names is accepted; anything else is
// rejected before the keychain is touched. Values never transit the
// persistent cache or the log files.
package vault

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Service is the keychain service name all entries are stored under.
const Service = "world-monitor"

// supportedKeys is the fixed allowlist of credential names the launcher
// manages on behalf of the UI.
var supportedKeys = []string{
	"GROQ_API_KEY",
	"OPENROUTER_API_KEY",
	"FRED_API_KEY",
	"EIA_API_KEY",
	"CLOUDFLARE_API_TOKEN",
	"ACLED_ACCESS_TOKEN",
	"WINGBITS_API_KEY",
	"WS_RELAY_URL",
	"VITE_OPENSKY_RELAY_URL",
	"OPENSKY_CLIENT_ID",
	"OPENSKY_CLIENT_SECRET",
	"AISSTREAM_API_KEY",
	"VITE_WS_RELAY_URL",
}

// ErrUnsupportedKey indicates a key name outside the allowlist.
var ErrUnsupportedKey = errors.New("unsupported secret key")

// SupportedKeys returns the allowlist in its fixed order.
func SupportedKeys() []string {
	keys := make([]string, len(supportedKeys))
	copy(keys, supportedKeys)
	return keys
}

// Supported reports whether key is in the allowlist.
func Supported(key string) bool {
	for _, k := range supportedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Vault is a keychain-backed credential store over the allowlist.
type Vault struct {
	service string
}

// New returns a Vault using the canonical service name.
func New() *Vault {
	return &Vault{service: Service}
}

// Get reads a credential. An absent entry is (value "", ok false, nil err),
// not an error; only keychain failures are reported.
func (v *Vault) Get(key string) (string, bool, error) {
	if !Supported(key) {
		return "", false, fmt.Errorf("%w: %s", ErrUnsupportedKey, key)
	}
	value, err := keyring.Get(v.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read keychain secret %s: %w", key, err)
	}
	return value, true, nil
}

// Set writes a credential, replacing any existing value.
func (v *Vault) Set(key, value string) error {
	if !Supported(key) {
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, key)
	}
	if err := keyring.Set(v.service, key, value); err != nil {
		return fmt.Errorf("write keychain secret %s: %w", key, err)
	}
	return nil
}

// Delete removes a credential. Deleting an absent entry is a no-op.
func (v *Vault) Delete(key string) error {
	if !Supported(key) {
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, key)
	}
	err := keyring.Delete(v.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete keychain secret %s: %w", key, err)
	}
	return nil
}
