package account

import (
	"crypto/ecdsa"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

func AddressFromPrivateKey(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}

// works with both 0x prefix form and naked form
func PrivateKeyFromHex(hex string) (string, *ecdsa.PrivateKey, error) {
	hex = strings.TrimSpace(hex)
	if strings.HasPrefix(hex, "0x") || strings.HasPrefix(hex, "0X") {
		hex = hex[2:]
	}
	if hex == "" {
		return "", nil, fmt.Errorf("invalid private key: empty")
	}
	privkey, err := crypto.HexToECDSA(hex)
	if err != nil {
		return "", nil, fmt.Errorf("invalid private key: %w", err)
	}
	return AddressFromPrivateKey(privkey), privkey, nil
}

func PrivateKeyFromKeystore(file string, password string) (string, *ecdsa.PrivateKey, error) {
	json, err := os.ReadFile(file)
	if err != nil {
		return "", nil, err
	}
	key, err := keystore.DecryptKey(json, password)
	if err != nil {
		return "", nil, err
	}
	return AddressFromPrivateKey(key.PrivateKey), key.PrivateKey, nil
}

// PrivateKeyHexFromKeystore decrypts a keystore file into the hex form
// EndpointSigner.Sign takes.
func PrivateKeyHexFromKeystore(file string, password string) (string, error) {
	_, key, err := PrivateKeyFromKeystore(file, password)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0x%x", crypto.FromECDSA(key)), nil
}
