package models

import "time"

// HouseBookmark links a user to a house they want financed. At most one
// bookmark exists per (user, house) pair; TrackingStatusID is the only
// field that changes after creation.
type HouseBookmark struct {
	ID               int64     `json:"id"`
	UserID           string    `json:"user_id"`
	HouseID          int64     `json:"house_id"`
	TrackingStatusID int       `json:"tracking_status_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
