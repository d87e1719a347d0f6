package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueAndParseToken(t *testing.T) {
	identity := Identity{UserID: 5, Email: "hr@example.com", Role: "HR"}

	token, err := IssueToken(testSecret, identity, "sid-9", time.Hour, time.Now())
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UserID)
	assert.Equal(t, "hr@example.com", claims.Email)
	assert.Equal(t, "HR", claims.Role)
	assert.Equal(t, "sid-9", claims.SessionID)
}

func TestParseToken_Rejects(t *testing.T) {
	identity := Identity{UserID: 5, Email: "hr@example.com", Role: "HR"}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueToken(testSecret, identity, "sid", time.Hour, time.Now())
		require.NoError(t, err)

		_, err = ParseToken("another-secret-another-secret-xx", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := IssueToken(testSecret, identity, "sid", time.Hour, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = ParseToken(testSecret, token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("missing session id", func(t *testing.T) {
		token, err := IssueToken(testSecret, identity, "", time.Hour, time.Now())
		require.NoError(t, err)

		_, err = ParseToken(testSecret, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseToken(testSecret, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
