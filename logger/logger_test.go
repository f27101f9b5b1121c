package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" warn "))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("whatever"))
}

func TestJSONLoggerWithModuleAndStack(t *testing.T) {
	var buf bytes.Buffer
	l := Module(NewWithWriter(&buf, "info", false), "send")

	l.Debug().Msg("hidden")
	l.Error().Stack().Err(errors.New("boom")).Msg("failed")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "send", line["module"])
	assert.Equal(t, "failed", line["message"])
	assert.Equal(t, "boom", line["error"])
	assert.NotEmpty(t, line["stack"])
	assert.NotEmpty(t, line["time"])
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "debug", true)
	l.Info().Str("tx_id", "0xabc").Msg("tx submitted")
	assert.Contains(t, buf.String(), "tx submitted")
	assert.Contains(t, buf.String(), "0xabc")
}
