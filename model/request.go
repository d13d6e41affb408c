// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,max=45"`
	LoginID  string  `json:"id" validate:"required,min=3,max=20"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Age      *int    `json:"age,omitempty"`
	Drone    *string `json:"drone,omitempty"`
}

// LoginRequest defines the payload for user authentication. The device id
// keys the refresh session so each device holds at most one session.
type LoginRequest struct {
	LoginID  string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
}

// RefreshRequest defines the payload for exchanging a refresh token for a
// new access token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
	DeviceID     string `json:"device_id" validate:"required"`
}

// LogoutRequest defines the payload for ending the session on one device.
type LogoutRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// CreateTermRequest defines the payload for publishing a terms-of-service
// document.
type CreateTermRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required"`
	Require int    `json:"require" validate:"oneof=0 1"`
}

// CreateSpotRequest defines the payload for registering a new drone spot.
type CreateSpotRequest struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Lat     float64 `json:"lat" validate:"required,latitude"`
	Lon     float64 `json:"lon" validate:"required,longitude"`
	Area    string  `json:"area" validate:"required,max=45"`
	Comment string  `json:"comment" validate:"max=500"`
	Permit  int     `json:"permit" validate:"oneof=0 1 2"`
	Photo   *string `json:"photo,omitempty"`
}

// CreateReviewRequest defines the payload for posting a review on a spot.
type CreateReviewRequest struct {
	SpotID    int    `json:"spot_id" validate:"required"`
	DroneType string `json:"drone_type" validate:"required,max=45"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Comment   string `json:"comment" validate:"required,max=1000"`
	Photo     string `json:"photo" validate:"omitempty,url"`
}

// CreateCourseRequest defines the payload for publishing a flight course.
type CreateCourseRequest struct {
	Name     string             `json:"name" validate:"required,max=100"`
	Content  string             `json:"content" validate:"required"`
	Distance int                `json:"distance" validate:"gte=0"`
	Duration int                `json:"duration" validate:"gte=0"`
	Visits   []CourseVisitInput `json:"visits" validate:"dive"`
}

// CourseVisitInput is one waypoint of a course; it references a spot.
type CourseVisitInput struct {
	SpotID int `json:"spot_id" validate:"required"`
	Order  int `json:"order" validate:"gte=0"`
}
