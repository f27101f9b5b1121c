package networks

var EthereumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "mainnet",
	AlternativeNames:   []string{"ethereum", "eth"},
	ChainID:            1,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	NodeVariableName:   "ETHEREUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"publicnode": "https://ethereum-rpc.publicnode.com",
	},
})

var Sepolia Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "sepolia",
	AlternativeNames:   []string{},
	ChainID:            11155111,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	NodeVariableName:   "ETHEREUM_SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
})
