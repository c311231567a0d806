package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndResolve(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	token, err := tokens.Issue(42)
	require.NoError(t, err)

	playerID, err := tokens.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), playerID)
}

func TestResolveRejects(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	good, err := tokens.Issue(7)
	require.NoError(t, err)

	expired := NewTokens("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Issue(7)
	require.NoError(t, err)

	other, err := NewTokens("other", time.Hour).Issue(7)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		description string
		token       string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"expired", old},
		{"wrong secret", other},
		{"unsigned", none},
		{"tampered", good + "x"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := tokens.Resolve(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	token, ok = BearerToken("bearer  xyz ")
	assert.True(t, ok)
	assert.Equal(t, "xyz", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer "} {
		_, ok := BearerToken(header)
		assert.False(t, ok, header)
	}
}
