package models

import "time"

// House is a property listing owned by exactly one admin. Ownership never
// changes after creation; every admin-scoped query filters on AdminID.
type House struct {
	ID            int64     `json:"id"`
	AdminID       string    `json:"admin_id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	Price         int64     `json:"price"`
	RoomCount     int       `json:"room_count"`
	BathroomCount int       `json:"bathroom_count"`
	ParkingCount  int       `json:"parking_count"`
	LandArea      float64   `json:"land_area"`
	BuildingArea  float64   `json:"building_area"`
	ImageURL      string    `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
}
