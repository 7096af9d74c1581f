package repositories

import (
	"database/sql"

	intconfig "github.com/Gerilya-By-BSI/huniya-backend/internal/config"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"
)

type TrackingStatusRepository struct {
	DB *sql.DB
}

func (r TrackingStatusRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListAll returns the seeded statuses in id order.
func (r TrackingStatusRepository) ListAll() ([]tracking.Status, error) {
	rows, err := r.db().Query(`SELECT id, name FROM tracking_statuses ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []tracking.Status{}
	for rows.Next() {
		var s tracking.Status
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
