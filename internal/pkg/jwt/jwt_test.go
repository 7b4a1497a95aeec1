package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("admin-42", TokenTTL)
	require.NoError(t, err)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-42", claims.AdminID)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := Sign("admin-42", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")

	_, err := Parse("not.a.token")
	assert.Error(t, err)
}
