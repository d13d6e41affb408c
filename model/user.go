package model

import "time"

// Privilege levels carried in tokens. Admins can manage spots and courses.
const (
	LevelUser  = 0
	LevelAdmin = 1
)

type User struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	LoginID   string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Level     int       `json:"level"`
	Age       *int      `json:"age,omitempty"`
	Drone     *string   `json:"drone,omitempty"`
	Image     *string   `json:"image,omitempty"`
	OneLiner  *string   `json:"one_liner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the public card returned for a user, including follow counters.
// IsFollowing is nil when the caller views their own profile or is anonymous.
type Profile struct {
	UID            string  `json:"uid"`
	Name           string  `json:"name"`
	Image          *string `json:"image,omitempty"`
	OneLiner       *string `json:"one_liner,omitempty"`
	Drone          *string `json:"drone,omitempty"`
	PostCount      int     `json:"post_count"`
	FollowerCount  int     `json:"follower_count"`
	FollowingCount int     `json:"following_count"`
	IsFollowing    *bool   `json:"is_following,omitempty"`
}
