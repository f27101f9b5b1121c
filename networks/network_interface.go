package networks

type Network interface {
	GetName() string
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() uint64

	GetNodeVariableName() string
	GetDefaultNodes() map[string]string
}
