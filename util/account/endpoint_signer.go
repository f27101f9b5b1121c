package account

import (
	"context"
	"math/big"
	"net/http"

	"github.com/pkg/errors"

	"github.com/tranvictor/txsubmit/common"
	"github.com/tranvictor/txsubmit/util/reader"
)

// ChainIDResolver looks up the chain id served at nodeEndpoint.
type ChainIDResolver func(ctx context.Context, nodeEndpoint string) (*big.Int, error)

// EndpointSigner signs with a raw private key. When the params carry no
// chain id it asks the node at the submission endpoint for it, which is
// the only network call it makes.
type EndpointSigner struct {
	resolveChainID ChainIDResolver
}

func NewEndpointSigner(httpClient *http.Client) *EndpointSigner {
	return NewEndpointSignerWithResolver(func(ctx context.Context, nodeEndpoint string) (*big.Int, error) {
		node := reader.NewOneNodeReader("submission-node", nodeEndpoint, httpClient)
		defer node.Close()
		return node.ChainID(ctx)
	})
}

func NewEndpointSignerWithResolver(resolver ChainIDResolver) *EndpointSigner {
	return &EndpointSigner{resolveChainID: resolver}
}

func (s *EndpointSigner) Sign(
	ctx context.Context,
	params common.TxParams,
	privateKey string,
	nodeEndpoint string,
) (string, error) {
	acc, err := NewKeyAccount(privateKey)
	if err != nil {
		return "", signingError(err, "couldn't unlock the account")
	}
	if params.From != nil && *params.From != acc.Address() {
		return "", signingErrorf(
			"from %s doesn't match the private key's address %s",
			params.From.Hex(), acc.AddressHex(),
		)
	}
	if err := params.Validate(); err != nil {
		return "", signingError(err, "incomplete tx params")
	}

	chainID := params.ChainIDBig()
	if chainID == nil {
		chainID, err = s.resolveChainID(ctx, nodeEndpoint)
		if err != nil {
			return "", signingError(err, "couldn't get chain id from the node")
		}
	}

	tx, err := common.BuildTx(params, chainID)
	if err != nil {
		return "", signingError(err, "couldn't build the tx")
	}
	signedTx, err := acc.SignTx(tx, chainID)
	if err != nil {
		return "", &SigningError{Err: errors.WithStack(err)}
	}
	payload, err := common.EncodeSignedTx(signedTx)
	if err != nil {
		return "", signingError(err, "couldn't encode the signed tx")
	}
	return payload, nil
}
