// file: service/token_codec.go

package service

import (
	"drone-spot-api/model"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// All tokens are signed with HMAC-SHA256; what separates the two token
// classes is the key, not the algorithm.
var signingMethod = jwt.SigningMethodHS256

// TokenCodecConfig carries the signing material for both token classes.
// Access and refresh tokens use independent secrets so a leaked key for one
// class cannot forge tokens of the other.
type TokenCodecConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

// TokenCodec signs and verifies the two bearer token classes. The clock is
// injected so expiry behavior is testable.
type TokenCodec struct {
	access  signingContext
	refresh signingContext
	now     func() time.Time
}

type signingContext struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(cfg TokenCodecConfig, now func() time.Time) (*TokenCodec, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, errors.New("token codec requires both access and refresh secrets")
	}
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{
		access:  signingContext{secret: []byte(cfg.AccessSecret), ttl: cfg.AccessTTL},
		refresh: signingContext{secret: []byte(cfg.RefreshSecret), ttl: cfg.RefreshTTL},
		now:     now,
	}, nil
}

// IssueAccess mints a short-lived access token for the subject.
func (c *TokenCodec) IssueAccess(subject string, level int) (string, time.Time, error) {
	return c.issue(c.access, subject, level)
}

// IssueRefresh mints a long-lived refresh token for the subject.
func (c *TokenCodec) IssueRefresh(subject string, level int) (string, time.Time, error) {
	return c.issue(c.refresh, subject, level)
}

func (c *TokenCodec) issue(sc signingContext, subject string, level int) (string, time.Time, error) {
	expiresAt := c.now().Add(sc.ttl)

	claims := &model.AppClaims{
		Level: level,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(c.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(signingMethod, claims)
	tokenString, err := token.SignedString(sc.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token string: %w", err)
	}
	return tokenString, expiresAt, nil
}

// VerifyAccess checks an access token's signature and expiry and returns its
// claims. Fails with ErrTokenExpired or ErrInvalidToken.
func (c *TokenCodec) VerifyAccess(tokenString string) (*model.AppClaims, error) {
	return c.verify(c.access, tokenString)
}

// VerifyRefresh is the refresh-key counterpart of VerifyAccess.
func (c *TokenCodec) VerifyRefresh(tokenString string) (*model.AppClaims, error) {
	return c.verify(c.refresh, tokenString)
}

func (c *TokenCodec) verify(sc signingContext, tokenString string) (*model.AppClaims, error) {
	claims := &model.AppClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return sc.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
