package common

import (
	"fmt"
	"math/big"
	"strings"
)

func decimalPower(decimal uint64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), new(big.Int).SetUint64(decimal), nil)
}

// FloatStringToBig converts a decimal string to a big int with specific decimal
// Example:
// - FloatStringToBig("1", 4) = 10000
// - FloatStringToBig("1.234", 4) = 12340
// Digits beyond decimal are truncated.
func FloatStringToBig(value string, decimal uint64) (*big.Int, error) {
	r, success := new(big.Rat).SetString(strings.TrimSpace(value))
	if !success {
		return nil, fmt.Errorf("couldn't parse %q to a number", value)
	}
	if r.Sign() < 0 {
		return nil, fmt.Errorf("%q is negative", value)
	}
	r.Mul(r, new(big.Rat).SetInt(decimalPower(decimal)))
	return new(big.Int).Quo(r.Num(), r.Denom()), nil
}

// GweiToWei converts a gwei amount string like "1.5" to wei
func GweiToWei(gwei string) (*big.Int, error) {
	return FloatStringToBig(gwei, 9)
}

// EthToWei converts an eth amount string like "0.1" to wei
func EthToWei(eth string) (*big.Int, error) {
	return FloatStringToBig(eth, 18)
}

// BigToFloatString converts a big int to its decimal representation
// Example:
// - BigToFloatString(1100, 3) = "1.1"
// - BigToFloatString(1100, 2) = "11"
func BigToFloatString(value *big.Int, decimal uint64) string {
	if value == nil {
		return "0"
	}
	s := new(big.Rat).SetFrac(value, decimalPower(decimal)).FloatString(int(decimal))
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
