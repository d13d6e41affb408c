package model

import "time"

// Agreement requirement for a term.
const (
	TermOptional = 0
	TermRequired = 1
)

type Term struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Require   int       `json:"require"`
	CreatedAt time.Time `json:"created_at"`
}
