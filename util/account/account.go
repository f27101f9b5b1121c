package account

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

type Account struct {
	signer  Signer
	address common.Address
}

// NewKeyAccount unlocks an account from its hex private key.
func NewKeyAccount(privateKey string) (*Account, error) {
	_, key, err := PrivateKeyFromHex(privateKey)
	if err != nil {
		return nil, err
	}
	return &Account{
		NewKeySigner(key),
		crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

func (self *Account) Address() common.Address {
	return self.address
}

func (self *Account) AddressHex() string {
	return self.address.Hex()
}

func (self *Account) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	return self.signer.SignTx(tx, chainId)
}
