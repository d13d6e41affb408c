package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims is the only claim shape this service signs or accepts.
// Subject (the user UID) rides in RegisteredClaims.Subject.
type AppClaims struct {
	Level int `json:"level"`
	jwt.RegisteredClaims
}
