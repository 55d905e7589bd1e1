package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/enterprise-api/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", "user-1", "party-1", "enterprise-api", 5)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse("secret", "enterprise-api", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "party-1", claims.PartyID)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", "user-1", "party-1", "enterprise-api", 5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro", "enterprise-api", tok)
	assert.Error(t, err, "firma incorrecta")

	_, err = pkgjwt.Parse("secret", "otro-emisor", tok)
	assert.Error(t, err, "emisor incorrecto")

	expired, err := pkgjwt.Generate("secret", "user-1", "party-1", "enterprise-api", -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse("secret", "enterprise-api", expired)
	assert.Error(t, err, "token expirado")

	_, err = pkgjwt.Parse("", "", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u", "p", "i", 1)
	assert.Error(t, err)
}
