package model

import "time"

// Flight permission status for a spot.
const (
	PermitFree       = 0
	PermitRestricted = 1
	PermitForbidden  = 2
)

type Spot struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	Area         string    `json:"area"`
	Comment      string    `json:"comment"`
	Permit       int       `json:"permit"`
	Photo        *string   `json:"photo,omitempty"`
	LikesCount   int       `json:"likes_count"`
	ReviewsCount int       `json:"reviews_count"`
	CreatedAt    time.Time `json:"created_at"`
}
