// file: model/session.go

package model

import "time"

// Session is one outstanding refresh session. At most one row exists per
// (UserUID, DeviceID) pair; a new login on the same device replaces it.
type Session struct {
	UserUID   string    `json:"user_uid"`
	DeviceID  string    `json:"device_id"`
	Token     string    `json:"-"` // The refresh token is not exposed in JSON responses.
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
