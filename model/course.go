package model

import "time"

type Course struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Content   string        `json:"content"`
	Distance  int           `json:"distance"`
	Duration  int           `json:"duration"`
	Visits    []CourseVisit `json:"visits,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// CourseVisit is one ordered waypoint of a course.
type CourseVisit struct {
	CourseID int `json:"course_id"`
	SpotID   int `json:"spot_id"`
	Order    int `json:"order"`
}
