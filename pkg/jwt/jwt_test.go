package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParse(t *testing.T) {
	tok, err := Generate("k", "u-1", "customer", "vconf", 5)
	require.NoError(t, err)

	userID, role, err := Parse("k", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "customer", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := Generate("k", "u-1", "customer", "vconf", 5)
	require.NoError(t, err)

	_, _, err = Parse("otra", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := Generate("k", "u-1", "customer", "vconf", -1)
	require.NoError(t, err)

	_, _, err = Parse("k", tok)
	assert.Error(t, err)
}

func TestParse_SinUsuario(t *testing.T) {
	tok, err := Generate("k", "", "customer", "vconf", 5)
	require.NoError(t, err)

	_, _, err = Parse("k", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := Generate("", "u-1", "customer", "vconf", 5)
	assert.Error(t, err)
	_, _, err = Parse("", "x.y.z")
	assert.Error(t, err)
}
