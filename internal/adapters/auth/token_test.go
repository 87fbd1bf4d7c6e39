package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	m := NewJWTManager("test-secret")

	token, err := m.Issue("ev-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	eventID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ev-123", eventID)
}

func TestJWTManager_Issue_Claims(t *testing.T) {
	secret := "test-secret"
	m := NewJWTManager(secret)

	token, err := m.Issue("ev-123", time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "ev-123", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTManager_Verify_Failures(t *testing.T) {
	m := NewJWTManager("test-secret")

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret")
		token, err := other.Issue("ev-123", time.Hour)
		require.NoError(t, err)

		_, err = m.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := m.Issue("ev-123", -time.Minute)
		require.NoError(t, err)

		_, err = m.Verify(token)
		require.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "ev-123"})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(token)
		require.Error(t, err)
	})
}
