package model

import "time"

type Review struct {
	ID        int       `json:"id"`
	SpotID    int       `json:"spot_id"`
	WriterUID string    `json:"writer_uid"`
	DroneType string    `json:"drone_type"`
	Date      string    `json:"date"`
	Comment   string    `json:"comment"`
	Photo     string    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
