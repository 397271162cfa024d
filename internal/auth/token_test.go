package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret")

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret")

	// Issued eleven hours ago, one past the ten hour window
	token, err := svc.issue("alice", time.Now().Add(-11*time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_JustInsideValidityWindow(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret")

	token, err := svc.issue("alice", time.Now().Add(-9*time.Hour))
	require.NoError(t, err)

	username, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenService("right-secret").Issue("alice")
	require.NoError(t, err)

	_, err = NewTokenService("wrong-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	svc := NewTokenService("super-secret")

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tokenStr)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", tokenStr)
	}
}
