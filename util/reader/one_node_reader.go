package reader

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

type OneNodeReader struct {
	nodeName   string
	nodeURL    string
	httpClient *http.Client
	client     *rpc.Client
	ethClient  *ethclient.Client
	mu         sync.Mutex
}

// NewOneNodeReader doesn't dial, the connection is made on first use.
// httpClient may be nil, in which case rpc's default client is used.
func NewOneNodeReader(name, url string, httpClient *http.Client) *OneNodeReader {
	return &OneNodeReader{
		nodeName:   name,
		nodeURL:    url,
		httpClient: httpClient,
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) initConnection(ctx context.Context) error {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.ethClient != nil {
		return nil
	}
	opts := []rpc.ClientOption{}
	if onr.httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(onr.httpClient))
	}
	client, err := rpc.DialOptions(ctx, onr.nodeURL, opts...)
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(client)
	return nil
}

func (onr *OneNodeReader) EthClient(ctx context.Context) (*ethclient.Client, error) {
	if err := onr.initConnection(ctx); err != nil {
		return nil, err
	}
	return onr.ethClient, nil
}

func (onr *OneNodeReader) ChainID(ctx context.Context) (*big.Int, error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return nil, err
	}
	return ethcli.ChainID(ctx)
}

func (onr *OneNodeReader) TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	ethcli, err := onr.EthClient(ctx)
	if err != nil {
		return nil, err
	}
	return ethcli.TransactionReceipt(ctx, common.HexToHash(txHash))
}

func (onr *OneNodeReader) Close() {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.client != nil {
		onr.client.Close()
	}
	onr.client = nil
	onr.ethClient = nil
}

var _ EthereumNode = (*OneNodeReader)(nil)
