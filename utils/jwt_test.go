package utils

import (
	"testing"
	"time"

	"washex/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("staff-1", "ravi@washx.local", models.RoleAgent, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	staffID, role, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", staffID)
	assert.Equal(t, models.RoleAgent, role)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("staff-1", "ravi@washx.local", models.RoleAgent, -time.Minute)
	require.NoError(t, err)

	_, _, err = VerifyToken(token)
	require.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, _, err := VerifyToken("not.a.token")
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("token-a")
	b := HashToken("token-a")
	c := HashToken("token-b")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
