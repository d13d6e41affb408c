package service

import (
	"database/sql"
	"drone-spot-api/logger"
	"drone-spot-api/model"
	"drone-spot-api/repository"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is what a successful login hands back to the transport layer.
type TokenPair struct {
	AccessToken   string    `json:"access_token"`
	AccessExpire  time.Time `json:"access_token_expire"`
	RefreshToken  string    `json:"refresh_token"`
	RefreshExpire time.Time `json:"refresh_token_expire"`
}

// AuthService owns the session protocol: login, refresh and logout. It is
// the only writer of session rows.
type AuthService struct {
	userRepo    repository.IUserRepository
	sessionRepo repository.ISessionRepository
	codec       *TokenCodec
	salt        string
	bcryptCost  int
}

func NewAuthService(
	userRepo repository.IUserRepository,
	sessionRepo repository.ISessionRepository,
	codec *TokenCodec,
	salt string,
	bcryptCost int,
) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		codec:       codec,
		salt:        salt,
		bcryptCost:  bcryptCost,
	}
}

// HashPassword combines the password with the server-side salt and applies
// bcrypt at the configured cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password+s.salt), s.bcryptCost)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash reports whether the password matches the stored digest.
// A mismatch is a plain false, never an error.
func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+s.salt))
	return err == nil
}

// Login verifies the credentials, replaces any existing session for this
// device and mints a fresh access/refresh token pair. Sessions on the
// user's other devices are untouched.
func (s *AuthService) Login(loginID, password, deviceID string) (*TokenPair, *model.User, error) {
	user, err := s.userRepo.GetUserByLoginID(loginID)
	if err != nil {
		if err == sql.ErrNoRows {
			// Same error as a wrong password; the caller must not be able
			// to probe which login ids exist.
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	if !s.CheckPasswordHash(password, user.Password) {
		return nil, nil, ErrInvalidCredentials
	}

	if err := s.sessionRepo.Delete(user.UID, deviceID); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	accessToken, accessExpire, err := s.codec.IssueAccess(user.UID, user.Level)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, refreshExpire, err := s.codec.IssueRefresh(user.UID, user.Level)
	if err != nil {
		return nil, nil, err
	}

	session := &model.Session{
		UserUID:   user.UID,
		DeviceID:  deviceID,
		Token:     refreshToken,
		ExpiresAt: refreshExpire,
	}
	if err := s.sessionRepo.Upsert(session); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"user_uid":  user.UID,
		"device_id": deviceID,
	}).Info("User logged in, session replaced for device")

	return &TokenPair{
		AccessToken:   accessToken,
		AccessExpire:  accessExpire,
		RefreshToken:  refreshToken,
		RefreshExpire: refreshExpire,
	}, user, nil
}

// Refresh exchanges a live refresh token for a new access token. The refresh
// token and its session row are left as they are; only the access token is
// reissued.
func (s *AuthService) Refresh(refreshToken, deviceID string) (string, time.Time, error) {
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return "", time.Time{}, err
	}

	session, err := s.sessionRepo.GetByTokenAndDevice(refreshToken, claims.Subject, deviceID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", time.Time{}, ErrSessionNotFound
		}
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// The stored expiry is re-checked even though the token signature was
	// already validated; the sweeper may not have run yet.
	if session.ExpiresAt.Before(s.codec.now()) {
		if err := s.sessionRepo.Delete(session.UserUID, session.DeviceID); err != nil {
			logger.Log.WithError(err).Warn("Failed to delete expired session during refresh")
		}
		return "", time.Time{}, ErrSessionNotFound
	}

	accessToken, accessExpire, err := s.codec.IssueAccess(claims.Subject, claims.Level)
	if err != nil {
		return "", time.Time{}, err
	}

	logger.Log.WithFields(logrus.Fields{
		"user_uid":  claims.Subject,
		"device_id": deviceID,
	}).Info("Access token refreshed")

	return accessToken, accessExpire, nil
}

// Logout deletes the session for one device. It is idempotent: logging out
// twice, or with no session at all, succeeds.
func (s *AuthService) Logout(userUID, deviceID string) error {
	if err := s.sessionRepo.Delete(userUID, deviceID); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"user_uid":  userUID,
		"device_id": deviceID,
	}).Info("User logged out")
	return nil
}
