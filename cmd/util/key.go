package util

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tranvictor/txsubmit/config"
	"github.com/tranvictor/txsubmit/ui"
	"github.com/tranvictor/txsubmit/util/account"
)

// KeystorePasswordVar lets non interactive runs unlock a keystore.
const KeystorePasswordVar = config.EnvPrefix + "_KEYSTORE_PASSWORD"

var ErrNoKey = errors.New("no key: set --private-key, " + config.EnvPrefix + "_PRIVATE_KEY or --keystore")

// PasswordReader reads a keystore password without echoing it.
type PasswordReader func(u ui.UI) (string, error)

func TerminalPassword(u ui.UI) (string, error) {
	if pw, ok := os.LookupEnv(KeystorePasswordVar); ok {
		return pw, nil
	}
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("stdin is not a terminal, set %s", KeystorePasswordVar)
	}
	u.Info("Keystore password: ")
	pw, err := term.ReadPassword(fd)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// ResolvePrivateKey returns the hex private key from the configured
// source. A raw key wins over a keystore.
func ResolvePrivateKey(u ui.UI, readPassword PasswordReader) (string, error) {
	if key := strings.TrimSpace(config.PrivateKey); key != "" {
		return key, nil
	}
	if config.Keystore == "" {
		return "", ErrNoKey
	}
	pw, err := readPassword(u)
	if err != nil {
		return "", fmt.Errorf("couldn't read keystore password: %w", err)
	}
	key, err := account.PrivateKeyHexFromKeystore(config.Keystore, pw)
	if err != nil {
		return "", fmt.Errorf("couldn't unlock %s: %w", config.Keystore, err)
	}
	return key, nil
}
