package config

import "time"

var Network string

var (
	Node       string
	ParamsFile string

	GasPrice    string
	TipGas      string
	MaxFeeGas   string
	GasLimit    uint64
	Nonce       uint64
	ChainID     uint64
	From        string
	To          string
	Value       string
	Data        string
	PrivateKey  string
	Keystore    string
	RPCTimeout  time.Duration
	WaitTimeout time.Duration

	DontBroadcast  bool
	WaitToBeMined  bool
	YesToAllPrompt bool
	OutputFormat   string
	EnvFile        string
	MetricsFile    string

	LogLevel  string
	LogPretty bool
)

const (
	OutputText = "text"
	OutputJSON = "json"
)
