package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/Gerilya-By-BSI/huniya-backend/internal/config"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
)

// HouseFilter enumerates every recognized listing filter. Range pairs
// (price, land area, building area) only apply when BOTH bounds are set; a
// lone bound is ignored. That asymmetry mirrors the mobile client contract
// and is kept for behavioral compatibility.
type HouseFilter struct {
	Location        string
	MinPrice        *int64
	MaxPrice        *int64
	RoomCount       *int
	BathroomCount   *int
	ParkingCount    *int
	MinLandArea     *float64
	MaxLandArea     *float64
	MinBuildingArea *float64
	MaxBuildingArea *float64
	Search          string
}

type HouseRepository struct {
	DB *sql.DB
}

func (r HouseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const houseColumns = `id, admin_id, title, location, price, room_count, bathroom_count, parking_count, land_area, building_area, image_url, created_at`

// buildHouseWhere composes the filter predicate. adminID != "" adds the
// ownership scope (admin_id = ?); with an empty adminID the query is global.
func buildHouseWhere(f HouseFilter, adminID string) (string, []any) {
	conds := []string{}
	args := []any{}

	if adminID != "" {
		conds = append(conds, "admin_id = ?")
		args = append(args, adminID)
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		conds = append(conds, "LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(loc)+"%")
	}
	if f.MinPrice != nil && f.MaxPrice != nil {
		conds = append(conds, "price >= ? AND price <= ?")
		args = append(args, *f.MinPrice, *f.MaxPrice)
	}
	if f.RoomCount != nil {
		conds = append(conds, "room_count = ?")
		args = append(args, *f.RoomCount)
	}
	if f.BathroomCount != nil {
		conds = append(conds, "bathroom_count = ?")
		args = append(args, *f.BathroomCount)
	}
	if f.ParkingCount != nil {
		conds = append(conds, "parking_count = ?")
		args = append(args, *f.ParkingCount)
	}
	if f.MinLandArea != nil && f.MaxLandArea != nil {
		conds = append(conds, "land_area >= ? AND land_area <= ?")
		args = append(args, *f.MinLandArea, *f.MaxLandArea)
	}
	if f.MinBuildingArea != nil && f.MaxBuildingArea != nil {
		conds = append(conds, "building_area >= ? AND building_area <= ?")
		args = append(args, *f.MinBuildingArea, *f.MaxBuildingArea)
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		conds = append(conds, "(LOWER(title) LIKE ? OR LOWER(location) LIKE ?)")
		pattern := "%" + strings.ToLower(q) + "%"
		args = append(args, pattern, pattern)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Count returns the number of houses matching the filter under the same
// predicate the windowed fetch uses.
func (r HouseRepository) Count(f HouseFilter, adminID string) (int, error) {
	where, args := buildHouseWhere(f, adminID)

	var total int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM houses`+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Find returns one page of houses, newest first with id as the tie-break so
// pagination stays deterministic when created_at collides.
func (r HouseRepository) Find(f HouseFilter, adminID string, limit, offset int) ([]models.House, error) {
	where, args := buildHouseWhere(f, adminID)
	args = append(args, limit, offset)

	rows, err := r.db().Query(`SELECT `+houseColumns+` FROM houses`+where+` ORDER BY created_at DESC, id ASC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	houses := []models.House{}
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, err
		}
		houses = append(houses, h)
	}
	return houses, rows.Err()
}

// GetByID loads a single house. Returns sql.ErrNoRows when absent.
func (r HouseRepository) GetByID(id int64) (models.House, error) {
	row := r.db().QueryRow(`SELECT `+houseColumns+` FROM houses WHERE id = ?`, id)
	return scanHouse(row)
}

// GetByIDForAdmin loads a house only when the admin owns it; a house owned
// by someone else scans as sql.ErrNoRows, never as someone else's data.
func (r HouseRepository) GetByIDForAdmin(id int64, adminID string) (models.House, error) {
	row := r.db().QueryRow(`SELECT `+houseColumns+` FROM houses WHERE id = ? AND admin_id = ?`, id, adminID)
	return scanHouse(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHouse(row rowScanner) (models.House, error) {
	var h models.House
	var imageURL sql.NullString
	err := row.Scan(
		&h.ID, &h.AdminID, &h.Title, &h.Location, &h.Price,
		&h.RoomCount, &h.BathroomCount, &h.ParkingCount,
		&h.LandArea, &h.BuildingArea, &imageURL, &h.CreatedAt,
	)
	if err != nil {
		return models.House{}, err
	}
	h.ImageURL = imageURL.String
	return h, nil
}
