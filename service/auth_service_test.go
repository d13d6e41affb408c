// file: service/auth_service_test.go

package service

import (
	"database/sql"
	"drone-spot-api/model"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *mockUserRepo) GetUserByLoginID(loginID string) (*model.User, error) {
	args := m.Called(loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetUserByUID(uid string) (*model.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) DeleteUser(uid string) error {
	args := m.Called(uid)
	return args.Error(0)
}

// fakeSessionRepo is an in-memory session store keyed by (user_uid,
// device_id), mirroring the upsert semantics of the real table.
type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[[2]string]*model.Session
	failWith error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[[2]string]*model.Session)}
}

func (f *fakeSessionRepo) Upsert(session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	copied := *session
	copied.CreatedAt = time.Now()
	f.sessions[[2]string{session.UserUID, session.DeviceID}] = &copied
	return nil
}

func (f *fakeSessionRepo) GetByUserAndDevice(userUID, deviceID string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	session, ok := f.sessions[[2]string{userUID, deviceID}]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return session, nil
}

func (f *fakeSessionRepo) GetByTokenAndDevice(token, userUID, deviceID string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	session, ok := f.sessions[[2]string{userUID, deviceID}]
	if !ok || session.Token != token {
		return nil, sql.ErrNoRows
	}
	return session, nil
}

func (f *fakeSessionRepo) Delete(userUID, deviceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.sessions, [2]string{userUID, deviceID})
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return 0, f.failWith
	}
	var count int64
	for key, session := range f.sessions {
		if session.ExpiresAt.Before(now) {
			delete(f.sessions, key)
			count++
		}
	}
	return count, nil
}

func (f *fakeSessionRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

const testSalt = "test-salt"

func newTestAuthService(t *testing.T, userRepo *mockUserRepo, sessions *fakeSessionRepo) *AuthService {
	t.Helper()
	return NewAuthService(userRepo, sessions, newTestCodec(t), testSalt, bcrypt.MinCost)
}

func testUser(t *testing.T, auth *AuthService, password string, level int) *model.User {
	t.Helper()
	hashed, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() returned an unexpected error: %v", err)
	}
	return &model.User{
		UID:      "uid-alice",
		Name:     "Alice",
		LoginID:  "alice",
		Email:    "alice@example.com",
		Password: hashed,
		Level:    level,
	}
}

// TestAuthService_HashAndCheckPassword ensures that password hashing and
// verification methods work correctly.
func TestAuthService_HashAndCheckPassword(t *testing.T) {
	authService := newTestAuthService(t, nil, nil)
	password := "mySecretPassword123"

	hashedPassword, err := authService.HashPassword(password)
	if err != nil {
		t.Fatalf("authService.HashPassword() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	match := authService.CheckPasswordHash(password, hashedPassword)
	if !match {
		t.Errorf("authService.CheckPasswordHash() should have returned true for a matching password, but got false.")
	}

	wrongPassword := "notMyPassword"
	match = authService.CheckPasswordHash(wrongPassword, hashedPassword)
	if match {
		t.Errorf("authService.CheckPasswordHash() should have returned false for a non-matching password, but got true.")
	}
}

// The server salt is part of the digest input: the same password hashed
// under a different salt must not verify.
func TestAuthService_SaltChangesDigest(t *testing.T) {
	authService := newTestAuthService(t, nil, nil)
	otherSalt := NewAuthService(nil, nil, newTestCodec(t), "another-salt", bcrypt.MinCost)

	hashed, err := otherSalt.HashPassword("password123")
	assert.NoError(t, err)
	assert.False(t, authService.CheckPasswordHash("password123", hashed))
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success issues tokens and stores session", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		sessions := newFakeSessionRepo()
		authService := newTestAuthService(t, mockRepo, sessions)
		user := testUser(t, authService, "password123", model.LevelAdmin)

		mockRepo.On("GetUserByLoginID", "alice").Return(user, nil).Once()

		pair, loggedIn, err := authService.Login("alice", "password123", "phone1")

		assert.NoError(t, err)
		assert.Equal(t, user.UID, loggedIn.UID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)

		// The access token must carry the same subject and level the login
		// used.
		claims, err := authService.codec.VerifyAccess(pair.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, user.UID, claims.Subject)
		assert.Equal(t, model.LevelAdmin, claims.Level)

		stored, err := sessions.GetByUserAndDevice(user.UID, "phone1")
		assert.NoError(t, err)
		assert.Equal(t, pair.RefreshToken, stored.Token)
		assert.Equal(t, pair.RefreshExpire, stored.ExpiresAt)

		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown id and wrong password are indistinguishable", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		sessions := newFakeSessionRepo()
		authService := newTestAuthService(t, mockRepo, sessions)
		user := testUser(t, authService, "password123", model.LevelUser)

		mockRepo.On("GetUserByLoginID", "nobody").Return(nil, sql.ErrNoRows).Once()
		_, _, errUnknown := authService.Login("nobody", "password123", "phone1")

		mockRepo.On("GetUserByLoginID", "alice").Return(user, nil).Once()
		_, _, errWrongPw := authService.Login("alice", "wrongpassword", "phone1")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
		assert.Equal(t, 0, sessions.count())
	})

	t.Run("store failure surfaces as StoreUnavailable, not InvalidCredentials", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		mockRepo.On("GetUserByLoginID", "alice").Return(nil, errors.New("connection refused")).Once()
		authService := newTestAuthService(t, mockRepo, newFakeSessionRepo())

		_, _, err := authService.Login("alice", "password123", "phone1")

		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("second login on same device replaces the session", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		sessions := newFakeSessionRepo()
		authService := newTestAuthService(t, mockRepo, sessions)
		user := testUser(t, authService, "p", model.LevelUser)
		mockRepo.On("GetUserByLoginID", "alice").Return(user, nil).Twice()

		first, _, err := authService.Login("alice", "p", "phone1")
		assert.NoError(t, err)
		_, _, err = authService.Login("alice", "p", "phone1")
		assert.NoError(t, err)

		// Still exactly one session for the device; the first refresh token
		// no longer matches a store row.
		assert.Equal(t, 1, sessions.count())
		_, _, err = authService.Refresh(first.RefreshToken, "phone1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("logins on different devices coexist", func(t *testing.T) {
		mockRepo := new(mockUserRepo)
		sessions := newFakeSessionRepo()
		authService := newTestAuthService(t, mockRepo, sessions)
		user := testUser(t, authService, "p", model.LevelUser)
		mockRepo.On("GetUserByLoginID", "alice").Return(user, nil).Twice()

		phone, _, err := authService.Login("alice", "p", "phone1")
		assert.NoError(t, err)
		tablet, _, err := authService.Login("alice", "p", "tablet1")
		assert.NoError(t, err)

		assert.Equal(t, 2, sessions.count())

		// Both refresh tokens stay valid on their own devices.
		_, _, err = authService.Refresh(phone.RefreshToken, "phone1")
		assert.NoError(t, err)
		_, _, err = authService.Refresh(tablet.RefreshToken, "tablet1")
		assert.NoError(t, err)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	login := func(t *testing.T) (*AuthService, *fakeSessionRepo, *TokenPair) {
		mockRepo := new(mockUserRepo)
		sessions := newFakeSessionRepo()
		authService := newTestAuthService(t, mockRepo, sessions)
		user := testUser(t, authService, "p", model.LevelUser)
		mockRepo.On("GetUserByLoginID", "alice").Return(user, nil).Once()
		pair, _, err := authService.Login("alice", "p", "phone1")
		assert.NoError(t, err)
		return authService, sessions, pair
	}

	t.Run("success issues a new access token only", func(t *testing.T) {
		authService, sessions, pair := login(t)

		accessToken, expiresAt, err := authService.Refresh(pair.RefreshToken, "phone1")
		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiresAt, 5*time.Second)

		claims, err := authService.codec.VerifyAccess(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, "uid-alice", claims.Subject)

		// No rotation: the stored refresh token is unchanged and still
		// usable.
		stored, err := sessions.GetByUserAndDevice("uid-alice", "phone1")
		assert.NoError(t, err)
		assert.Equal(t, pair.RefreshToken, stored.Token)
		_, _, err = authService.Refresh(pair.RefreshToken, "phone1")
		assert.NoError(t, err)
	})

	t.Run("refresh after logout fails with SessionNotFound", func(t *testing.T) {
		authService, _, pair := login(t)

		assert.NoError(t, authService.Logout("uid-alice", "phone1"))

		_, _, err := authService.Refresh(pair.RefreshToken, "phone1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("refresh from another device fails with SessionNotFound", func(t *testing.T) {
		authService, _, pair := login(t)

		_, _, err := authService.Refresh(pair.RefreshToken, "phone2")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("garbage token fails with InvalidToken", func(t *testing.T) {
		authService, _, _ := login(t)

		_, _, err := authService.Refresh("not-a-token", "phone1")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("access token is not accepted as a refresh token", func(t *testing.T) {
		authService, _, pair := login(t)

		_, _, err := authService.Refresh(pair.AccessToken, "phone1")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("stale store row is deleted lazily", func(t *testing.T) {
		authService, sessions, pair := login(t)

		// Age the stored row past expiry while the token itself is still
		// signature-valid.
		stored, err := sessions.GetByUserAndDevice("uid-alice", "phone1")
		assert.NoError(t, err)
		stored.ExpiresAt = time.Now().Add(-time.Minute)

		_, _, err = authService.Refresh(pair.RefreshToken, "phone1")
		assert.ErrorIs(t, err, ErrSessionNotFound)
		assert.Equal(t, 0, sessions.count())
	})

	t.Run("store failure surfaces as StoreUnavailable, not SessionNotFound", func(t *testing.T) {
		authService, sessions, pair := login(t)
		sessions.failWith = errors.New("connection refused")

		_, _, err := authService.Refresh(pair.RefreshToken, "phone1")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("idempotent", func(t *testing.T) {
		sessions := newFakeSessionRepo()
		authService := newTestAuthService(t, nil, sessions)

		assert.NoError(t, authService.Logout("uid-alice", "phone1"))
		assert.NoError(t, authService.Logout("uid-alice", "phone1"))
	})

	t.Run("store failure surfaces as StoreUnavailable", func(t *testing.T) {
		sessions := newFakeSessionRepo()
		sessions.failWith = errors.New("connection refused")
		authService := newTestAuthService(t, nil, sessions)

		assert.ErrorIs(t, authService.Logout("uid-alice", "phone1"), ErrStoreUnavailable)
	})
}

// Concurrent logins on the same device must end with exactly one session
// row; concurrent logins on distinct devices keep one row each.
func TestAuthService_ConcurrentLogins(t *testing.T) {
	mockRepo := new(mockUserRepo)
	sessions := newFakeSessionRepo()
	authService := newTestAuthService(t, mockRepo, sessions)
	user := testUser(t, authService, "p", model.LevelUser)
	mockRepo.On("GetUserByLoginID", "alice").Return(user, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := authService.Login("alice", "p", "phone1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sessions.count())
}
