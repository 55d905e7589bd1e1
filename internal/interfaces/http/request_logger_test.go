package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/enterprise-api/internal/application/usecase"
	"github.com/jhoicas/enterprise-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/enterprise-api/internal/interfaces/http"
	"github.com/jhoicas/enterprise-api/pkg/logger"
)

func TestRequestLogger_RegistraPeticionYUsuario(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		EnterpriseUC: usecase.NewEnterpriseUseCase(memory.NewEnterpriseRepository(), nil, nil),
		JWTSecret:    testJWTSecret,
		JWTIssuer:    testIssuer,
		Logger:       log,
	})

	resp := sendAs(t, app, http.MethodGet, "/api/enterprises/no-existe", nil, bearer(t, testJWTSecret))
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/enterprises/no-existe", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
	assert.Equal(t, testUserID, entry["user_id"])
}
