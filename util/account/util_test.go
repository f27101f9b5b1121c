package account

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrivateKeyFromHex(t *testing.T) {
	for _, key := range []string{testKey, testKey[2:], "  " + testKey + "\n", "0X" + testKey[2:]} {
		addr, _, err := PrivateKeyFromHex(key)
		require.NoError(t, err, key)
		assert.Equal(t, testAddress, addr)
	}

	for _, key := range []string{"", "0x", "0x12", "zz"} {
		_, _, err := PrivateKeyFromHex(key)
		require.Error(t, err, key)
		assert.Contains(t, err.Error(), "invalid private key")
	}
}

func TestPrivateKeyHexFromKeystore(t *testing.T) {
	priv, err := crypto.HexToECDSA(testKey[2:])
	require.NoError(t, err)
	encrypted, err := keystore.EncryptKey(&keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(priv.PublicKey),
		PrivateKey: priv,
	}, "secret", keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(file, encrypted, 0o600))

	hex, err := PrivateKeyHexFromKeystore(file, "secret")
	require.NoError(t, err)
	assert.Equal(t, testKey, hex)

	_, err = PrivateKeyHexFromKeystore(file, "wrong")
	assert.Error(t, err)

	_, err = PrivateKeyHexFromKeystore(filepath.Join(t.TempDir(), "missing.json"), "secret")
	assert.Error(t, err)
}

func TestKeyAccount(t *testing.T) {
	acc, err := NewKeyAccount(testKey)
	require.NoError(t, err)
	assert.Equal(t, testAddress, acc.AddressHex())
	assert.Equal(t, testAddress, acc.Address().Hex())

	_, err = NewKeySigner(nil).SignTx(nil, nil)
	assert.Error(t, err)
}
