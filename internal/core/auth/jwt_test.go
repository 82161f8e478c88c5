package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexcase/internal/domain"
)

func newTestJWTer(t *testing.T) *JWTer {
	t.Helper()
	j, err := NewJWTer("test-secret", "lexcase-test")
	require.NoError(t, err)
	return j
}

func TestNewJWTer_RequiresSecret(t *testing.T) {
	j, err := NewJWTer("", "lexcase")
	assert.Nil(t, j)
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestIssueParse_RoundTrip(t *testing.T) {
	j := newTestJWTer(t)
	id := domain.Identity{ID: "u-1", Email: "ada@firm.test", Role: domain.RoleLawyer}

	tok, err := j.Issue(id)
	require.NoError(t, err)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.Identity())
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, TokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestParse_ExpiredAndTamperedLookAlike(t *testing.T) {
	j := newTestJWTer(t)
	id := domain.Identity{ID: "u-1", Email: "ada@firm.test", Role: domain.RoleAdmin}

	expired := *j
	expired.Now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	oldTok, err := expired.Issue(id)
	require.NoError(t, err)

	goodTok, err := j.Issue(id)
	require.NoError(t, err)
	parts := strings.Split(goodTok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	other, err := NewJWTer("another-secret", "lexcase-test")
	require.NoError(t, err)
	foreignTok, err := other.Issue(id)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":   oldTok,
		"tampered":  tampered,
		"foreign":   foreignTok,
		"malformed": "not-a-jwt",
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := j.Parse(tok)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestParse_RejectsWrongIssuer(t *testing.T) {
	j := newTestJWTer(t)
	other, err := NewJWTer("test-secret", "someone-else")
	require.NoError(t, err)

	tok, err := other.Issue(domain.Identity{ID: "u-1", Role: domain.RoleLawyer})
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
