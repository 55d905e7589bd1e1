package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/enterprise-api/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Named("enterprise").Error().Str("tax_id", "x").Msg("tax id inválido")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "enterprise", entry["component"])
	assert.Equal(t, "x", entry["tax_id"])
	assert.Equal(t, "tax id inválido", entry["message"])
}

func TestNew_RespetaNivel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() { log.Error().Msg("nada") })
}
