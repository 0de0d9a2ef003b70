package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	token, err := issuer.Sign("64f1c0ffee0000000000aaaa", "doc@example.com")
	assert.NoError(t, err)

	claims, err := issuer.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "64f1c0ffee0000000000aaaa", claims.ID)
	assert.Equal(t, "doc@example.com", claims.Email)
}

func TestVerify_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	token, err := issuer.Sign("id", "a@b.c")
	assert.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-one", time.Hour).Sign("id", "a@b.c")
	assert.NoError(t, err)

	_, err = NewIssuer("secret-two", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	_, err := issuer.Verify("not-a-token")
	assert.Error(t, err)
}
