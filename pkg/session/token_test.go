package session

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := signToken("abc-123", time.Minute)
	require.NoError(t, err)

	id, err := parseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", id)
}

func TestTokenTamperedSignature(t *testing.T) {
	token, err := signToken("abc-123", time.Minute)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	_, err = parseToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestTokenExpired(t *testing.T) {
	token, err := signToken("abc-123", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(token)
	assert.ErrorIs(t, err, ErrBadToken)
}

func TestTokenGarbage(t *testing.T) {
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := parseToken(raw)
		assert.ErrorIs(t, err, ErrBadToken, "token %q", raw)
	}
}
