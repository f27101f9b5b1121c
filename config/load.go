package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "TXSUBMIT"

// Keys double as flag names. In the environment they are upper cased,
// dashes become underscores and EnvPrefix is prepended, e.g.
// TXSUBMIT_PRIVATE_KEY.
const (
	KeyNode        = "node"
	KeyNetwork     = "network"
	KeyPrivateKey  = "private-key"
	KeyKeystore    = "keystore"
	KeyRPCTimeout  = "rpc-timeout"
	KeyWaitTimeout = "wait-timeout"
	KeyOutput      = "output"
	KeyLogLevel    = "log-level"
	KeyLogPretty   = "log-pretty"
)

// Load reads envFile (a missing file is fine) into the process environment
// and returns a viper instance reading TXSUBMIT_ variables.
func Load(envFile string) (*viper.Viper, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("couldn't load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyNetwork, "mainnet")
	v.SetDefault(KeyRPCTimeout, 30*time.Second)
	v.SetDefault(KeyWaitTimeout, 5*time.Minute)
	v.SetDefault(KeyOutput, OutputText)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogPretty, true)
	return v, nil
}

// BindFlags makes explicitly set flags win over the environment.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{
		KeyNode, KeyNetwork, KeyPrivateKey, KeyKeystore, KeyRPCTimeout,
		KeyWaitTimeout, KeyOutput, KeyLogLevel, KeyLogPretty,
	} {
		if f := flags.Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Apply copies the resolved settings into the package variables.
func Apply(v *viper.Viper) error {
	Node = strings.TrimSpace(v.GetString(KeyNode))
	Network = strings.TrimSpace(v.GetString(KeyNetwork))
	PrivateKey = strings.TrimSpace(v.GetString(KeyPrivateKey))
	Keystore = strings.TrimSpace(v.GetString(KeyKeystore))
	RPCTimeout = v.GetDuration(KeyRPCTimeout)
	WaitTimeout = v.GetDuration(KeyWaitTimeout)
	OutputFormat = strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput)))
	LogLevel = v.GetString(KeyLogLevel)
	LogPretty = v.GetBool(KeyLogPretty)

	if OutputFormat != OutputText && OutputFormat != OutputJSON {
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, OutputFormat)
	}
	if RPCTimeout <= 0 {
		return fmt.Errorf("rpc timeout must be positive, got %s", RPCTimeout)
	}
	return nil
}
