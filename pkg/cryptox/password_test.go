package cryptox_test

import (
	"strings"
	"testing"

	"github.com/moodmate/auth/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := cryptox.HashPassword("p12345678")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$2"), "hash should be algorithm-tagged")

	require.NoError(t, cryptox.VerifyPassword("p12345678", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrPasswordMismatch)
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// A malformed hash must report mismatch, never panic.
	err := cryptox.VerifyPassword("anything", "not-a-bcrypt-hash")
	require.ErrorIs(t, err, cryptox.ErrPasswordMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	a, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}

func TestFingerprintToken(t *testing.T) {
	fp := cryptox.FingerprintToken("some-token")
	require.Len(t, fp, 43)
	require.Equal(t, fp, cryptox.FingerprintToken("some-token"))
	require.NotEqual(t, fp, cryptox.FingerprintToken("some-other-token"))
}
