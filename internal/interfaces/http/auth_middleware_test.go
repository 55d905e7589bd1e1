package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/enterprise-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/enterprise-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testPartyID   = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "enterprise-api-test"
)

// buildAuthApp expone /protected detrás de AuthMiddleware y devuelve los locals cargados.
func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, testIssuer),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"party_id": apphttp.GetPartyID(c),
			})
		},
	)
	return app
}

func bearer(t *testing.T, secret string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, testUserID, testPartyID, testIssuer, 60)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	resp := doProtected(t, buildAuthApp(), bearer(t, testJWTSecret))
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testPartyID, body["party_id"])
}

func TestAuthMiddleware_Rechazos(t *testing.T) {
	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"esquema distinto", "Basic abc", "INVALID_TOKEN"},
		{"firma de otro secret", bearer(t, "otro-secret"), "INVALID_TOKEN"},
		{"token basura", "Bearer no.es.jwt", "INVALID_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doProtected(t, buildAuthApp(), tc.header)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body["code"])
		})
	}
}
