package util

import (
	"net/http"

	"github.com/tranvictor/txsubmit/config"
	"github.com/tranvictor/txsubmit/networks"
)

const defaultNativeSymbol = "ETH"

// ResolveNode picks the endpoint from --node, falling back to the
// network's node. The native token symbol is only used for display.
func ResolveNode() (endpoint string, nativeSymbol string, err error) {
	network, netErr := networks.GetNetwork(config.Network)
	nativeSymbol = defaultNativeSymbol
	if netErr == nil {
		nativeSymbol = network.GetNativeTokenSymbol()
	}
	if config.Node != "" {
		return config.Node, nativeSymbol, nil
	}
	if netErr != nil {
		return "", "", netErr
	}
	endpoint, err = networks.NodeURL(network)
	return endpoint, nativeSymbol, err
}

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: config.RPCTimeout}
}
