// file: service/sweeper_test.go

package service

import (
	"drone-spot-api/model"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Upsert(session *model.Session) error {
	args := m.Called(session)
	return args.Error(0)
}
func (m *mockSessionRepo) GetByUserAndDevice(userUID, deviceID string) (*model.Session, error) {
	args := m.Called(userUID, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}
func (m *mockSessionRepo) GetByTokenAndDevice(token, userUID, deviceID string) (*model.Session, error) {
	args := m.Called(token, userUID, deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}
func (m *mockSessionRepo) Delete(userUID, deviceID string) error {
	args := m.Called(userUID, deviceID)
	return args.Error(0)
}
func (m *mockSessionRepo) DeleteExpired(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

func TestSweeper_SweepOnce(t *testing.T) {
	mockRepo := new(mockSessionRepo)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockRepo.On("DeleteExpired", now).Return(int64(3), nil).Once()

	sweeper := NewSweeper(mockRepo, time.Hour, func() time.Time { return now })
	sweeper.SweepOnce()

	mockRepo.AssertExpectations(t)
}

// One failed pass must not stop later passes.
func TestSweeper_ErrorIsolatedPerRun(t *testing.T) {
	mockRepo := new(mockSessionRepo)
	mockRepo.On("DeleteExpired", mock.Anything).Return(int64(0), errors.New("db down")).Once()
	mockRepo.On("DeleteExpired", mock.Anything).Return(int64(2), nil).Once()

	sweeper := NewSweeper(mockRepo, time.Hour, nil)
	sweeper.SweepOnce()
	sweeper.SweepOnce()

	mockRepo.AssertExpectations(t)
}

// Exactly the expired rows are removed, the live ones stay.
func TestSweeper_RemovesOnlyExpiredSessions(t *testing.T) {
	sessions := newFakeSessionRepo()
	now := time.Now()

	expired := []string{"d1", "d2", "d3"}
	for _, device := range expired {
		err := sessions.Upsert(&model.Session{
			UserUID: "u1", DeviceID: device, Token: "t-" + device,
			ExpiresAt: now.Add(-time.Hour),
		})
		assert.NoError(t, err)
	}
	live := []string{"d4", "d5"}
	for _, device := range live {
		err := sessions.Upsert(&model.Session{
			UserUID: "u1", DeviceID: device, Token: "t-" + device,
			ExpiresAt: now.Add(time.Hour),
		})
		assert.NoError(t, err)
	}

	sweeper := NewSweeper(sessions, time.Hour, func() time.Time { return now })
	sweeper.SweepOnce()

	assert.Equal(t, len(live), sessions.count())
	for _, device := range live {
		_, err := sessions.GetByUserAndDevice("u1", device)
		assert.NoError(t, err)
	}
}

func TestSweeper_StartStop(t *testing.T) {
	sessions := newFakeSessionRepo()
	sweeper := NewSweeper(sessions, 10*time.Millisecond, nil)

	sweeper.Start()
	time.Sleep(50 * time.Millisecond)
	sweeper.Stop()

	// Stop returns only after the loop has exited; a second sweep must not
	// happen afterwards.
	countAfterStop := sessions.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, countAfterStop, sessions.count())
}
