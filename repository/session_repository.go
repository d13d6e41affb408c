// file: repository/session_repository.go

package repository

import (
	"database/sql"
	"drone-spot-api/logger"
	"drone-spot-api/model"
	"time"

	"github.com/sirupsen/logrus"
)

// ISessionRepository defines the contract for refresh session persistence.
// Sessions are keyed by (user_uid, device_id); Upsert replaces any prior row
// for that key, so the table never holds two live sessions for one device.
type ISessionRepository interface {
	Upsert(session *model.Session) error
	GetByUserAndDevice(userUID, deviceID string) (*model.Session, error)
	GetByTokenAndDevice(token, userUID, deviceID string) (*model.Session, error)
	Delete(userUID, deviceID string) error
	DeleteExpired(now time.Time) (int64, error)
}

// SessionRepository implements ISessionRepository on Postgres.
type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// Upsert writes the session row for (user_uid, device_id), replacing any
// existing row for the same key.
func (r *SessionRepository) Upsert(session *model.Session) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_uid":   session.UserUID,
		"device_id":  session.DeviceID,
		"expires_at": session.ExpiresAt,
	})
	log.Info("Executing query to upsert refresh session")

	query := `INSERT INTO sessions (user_uid, device_id, token, expires_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_uid, device_id)
	          DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = now()
	          RETURNING created_at`
	err := r.DB.QueryRow(query, session.UserUID, session.DeviceID, session.Token, session.ExpiresAt).
		Scan(&session.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute upsert session query")
		return err
	}
	return nil
}

// GetByUserAndDevice retrieves the session for one device, if any.
func (r *SessionRepository) GetByUserAndDevice(userUID, deviceID string) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT user_uid, device_id, token, expires_at, created_at
	          FROM sessions WHERE user_uid = $1 AND device_id = $2`
	err := r.DB.QueryRow(query, userUID, deviceID).Scan(
		&session.UserUID, &session.DeviceID, &session.Token, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).Error("Failed to execute get session query")
		}
		return nil, err // Return sql.ErrNoRows if not found
	}
	return session, nil
}

// GetByTokenAndDevice binds a presented refresh token to both its owner and
// the device it was issued for. A token replayed from another device finds
// no row here.
func (r *SessionRepository) GetByTokenAndDevice(token, userUID, deviceID string) (*model.Session, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_uid":  userUID,
		"device_id": deviceID,
	})
	log.Info("Executing query to get refresh session by token and device")

	session := &model.Session{}
	query := `SELECT user_uid, device_id, token, expires_at, created_at
	          FROM sessions WHERE token = $1 AND user_uid = $2 AND device_id = $3`
	err := r.DB.QueryRow(query, token, userUID, deviceID).Scan(
		&session.UserUID, &session.DeviceID, &session.Token, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			log.WithError(err).Error("Failed to execute get session by token query")
		}
		return nil, err
	}
	return session, nil
}

// Delete removes the session for one device. Deleting a missing row is not
// an error; logout stays idempotent.
func (r *SessionRepository) Delete(userUID, deviceID string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_uid":  userUID,
		"device_id": deviceID,
	})
	log.Info("Executing query to delete refresh session")

	query := `DELETE FROM sessions WHERE user_uid = $1 AND device_id = $2`
	_, err := r.DB.Exec(query, userUID, deviceID)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete session query")
		return err
	}
	return nil
}

// DeleteExpired bulk-removes sessions whose expiry has passed and returns
// how many rows were removed.
func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`
	res, err := r.DB.Exec(query, now)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete expired sessions query")
		return 0, err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return count, nil
}
