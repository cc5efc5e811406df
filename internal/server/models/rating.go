package models

import "time"

// Rating is a user's score for a product. ID is a UUID.
type Rating struct {
	ID        string    `json:"id"`
	ProductID int64     `json:"product_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
