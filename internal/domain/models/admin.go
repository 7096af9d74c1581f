package models

import "time"

// Admin belongs to one branch and owns a subset of the house listings.
type Admin struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	BranchID  int64     `json:"branch_id"`
	Branch    *Branch   `json:"branch,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
