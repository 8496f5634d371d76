package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"vendorhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ServiceAttr(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "vendorhub"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "vendorhub", record["service"])
	assert.Equal(t, "hello", record["msg"])
}

func TestNewLogger_LevelFilter(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := newLogger(&bytes.Buffer{}, cfg)
	require.Error(t, err)
}
