package models

import "time"

// User is an end user who bookmarks houses for financing.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	PhoneNumber string       `json:"phone_number"`
	ProfileRisk *ProfileRisk `json:"profile_risk,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ProfileRisk is read-only reference data (Good/Standard/Poor), filled by
// the external risk-prediction pipeline. This backend only reads it.
type ProfileRisk struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
