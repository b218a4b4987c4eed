package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := NewSessionToken("topsecret", "sess-42", 5)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	sid, err := ParseSessionToken("topsecret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, "sess-42", sid)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	tok, err := NewSessionToken("topsecret", "sess-42", 5)
	require.NoError(t, err)

	_, err = ParseSessionToken("othersecret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	_, err := ParseSessionToken("topsecret", "not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSessionTokenExpired(t *testing.T) {
	tok, err := NewSessionToken("topsecret", "sess-42", -1)
	require.NoError(t, err)

	_, err = ParseSessionToken("topsecret", tok.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
