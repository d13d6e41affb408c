// file: service/token_codec_test.go

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestCodec(t *testing.T) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(TokenCodecConfig{
		AccessSecret:  "test-access-secret",
		AccessTTL:     2 * time.Hour,
		RefreshSecret: "test-refresh-secret",
		RefreshTTL:    14 * 24 * time.Hour,
	}, nil)
	if err != nil {
		t.Fatalf("NewTokenCodec() returned an unexpected error: %v", err)
	}
	return codec
}

func TestTokenCodec_RequiresSecrets(t *testing.T) {
	_, err := NewTokenCodec(TokenCodecConfig{AccessSecret: "a"}, nil)
	assert.Error(t, err)

	_, err = NewTokenCodec(TokenCodecConfig{RefreshSecret: "r"}, nil)
	assert.Error(t, err)
}

func TestTokenCodec_AccessRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	for _, level := range []int{0, 1} {
		token, expiresAt, err := codec.IssueAccess("u1", level)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, 5*time.Second)

		claims, err := codec.VerifyAccess(token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.Subject)
		assert.Equal(t, level, claims.Level)
	}
}

func TestTokenCodec_RefreshRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	token, expiresAt, err := codec.IssueRefresh("u1", 1)
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(14*24*time.Hour), expiresAt, 5*time.Second)

	claims, err := codec.VerifyRefresh(token)
	assert.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, 1, claims.Level)
}

// A token of one class must never verify under the other class's key.
func TestTokenCodec_RejectsCrossClassTokens(t *testing.T) {
	codec := newTestCodec(t)

	accessToken, _, err := codec.IssueAccess("u1", 0)
	assert.NoError(t, err)
	refreshToken, _, err := codec.IssueRefresh("u1", 0)
	assert.NoError(t, err)

	_, err = codec.VerifyRefresh(accessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = codec.VerifyAccess(refreshToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenCodec_RejectsForeignKey(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewTokenCodec(TokenCodecConfig{
		AccessSecret:  "some-other-access-secret",
		AccessTTL:     time.Hour,
		RefreshSecret: "some-other-refresh-secret",
		RefreshTTL:    time.Hour,
	}, nil)
	assert.NoError(t, err)

	token, _, err := other.IssueAccess("u1", 0)
	assert.NoError(t, err)

	_, err = codec.VerifyAccess(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenCodec_RejectsMalformedToken(t *testing.T) {
	codec := newTestCodec(t)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := codec.VerifyAccess(tok)
		assert.True(t, errors.Is(err, ErrInvalidToken), "token %q should be invalid", tok)
	}
}

// A token issued with a negative TTL is already expired and must fail with
// the expiry kind, not the generic invalid kind.
func TestTokenCodec_ExpiredToken(t *testing.T) {
	expiredCodec, err := NewTokenCodec(TokenCodecConfig{
		AccessSecret:  "test-access-secret",
		AccessTTL:     -1 * time.Second,
		RefreshSecret: "test-refresh-secret",
		RefreshTTL:    -1 * time.Second,
	}, nil)
	assert.NoError(t, err)

	accessToken, _, err := expiredCodec.IssueAccess("u1", 0)
	assert.NoError(t, err)
	refreshToken, _, err := expiredCodec.IssueRefresh("u1", 0)
	assert.NoError(t, err)

	_, err = expiredCodec.VerifyAccess(accessToken)
	assert.True(t, errors.Is(err, ErrTokenExpired))

	_, err = expiredCodec.VerifyRefresh(refreshToken)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}

// Expiry is evaluated against the injected clock, so a frozen clock can
// walk a token across its expiry instant.
func TestTokenCodec_InjectedClock(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec, err := NewTokenCodec(TokenCodecConfig{
		AccessSecret:  "test-access-secret",
		AccessTTL:     time.Hour,
		RefreshSecret: "test-refresh-secret",
		RefreshTTL:    time.Hour,
	}, func() time.Time { return now })
	assert.NoError(t, err)

	token, expiresAt, err := codec.IssueAccess("u1", 0)
	assert.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	_, err = codec.VerifyAccess(token)
	assert.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = codec.VerifyAccess(token)
	assert.True(t, errors.Is(err, ErrTokenExpired))
}
