package networks

var OptimismMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "optimism",
	AlternativeNames:   []string{"op"},
	ChainID:            10,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	NodeVariableName:   "OPTIMISM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-optimism": "https://mainnet.optimism.io",
	},
})

var ArbitrumMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "arbitrum",
	AlternativeNames:   []string{},
	ChainID:            42161,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	NodeVariableName:   "ARBITRUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"arbitrum": "https://arb1.arbitrum.io/rpc",
	},
})

var BaseMainnet Network = NewGenericNetwork(GenericNetworkConfig{
	Name:               "base",
	AlternativeNames:   []string{},
	ChainID:            8453,
	NativeTokenSymbol:  "ETH",
	NativeTokenDecimal: 18,
	NodeVariableName:   "BASE_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"public-base": "https://mainnet.base.org",
	},
})
