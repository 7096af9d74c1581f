package repositories

import (
	"database/sql"
	"time"

	intconfig "github.com/Gerilya-By-BSI/huniya-backend/internal/config"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
)

// BookmarkWithHouse carries a bookmark together with the owning house's
// admin and title, so callers can run the ownership check without a second
// round trip.
type BookmarkWithHouse struct {
	models.HouseBookmark
	HouseAdminID string
	HouseTitle   string
}

// FinancingUser is one row of the admin's financing pipeline: who bookmarked
// which owned house, with risk profile and raw status code.
type FinancingUser struct {
	HouseID         int64
	HouseTitle      string
	UserID          string
	UserName        string
	UserPhone       string
	UserEmail       string
	ProfileRisk     sql.NullString
	StatusName      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HouseBookmarker is a user who bookmarked a specific house.
type HouseBookmarker struct {
	UserID        string
	UserName      string
	UserPhone     string
	ProfileRiskID sql.NullInt64
	ProfileRisk   sql.NullString
	StatusID      int
	StatusName    string
	BookmarkedAt  time.Time
}

// UserBookmark is a house as it appears in the owner user's bookmark list.
type UserBookmark struct {
	House      models.House
	StatusID   int
	StatusName string
}

type BookmarkRepository struct {
	DB *sql.DB
}

func (r BookmarkRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// FindByUserAndHouse loads the bookmark for a (user, house) pair together
// with the owning house. Returns sql.ErrNoRows when no bookmark exists.
func (r BookmarkRepository) FindByUserAndHouse(userID string, houseID int64) (BookmarkWithHouse, error) {
	var b BookmarkWithHouse
	err := r.db().QueryRow(`
		SELECT b.id, b.user_id, b.house_id, b.tracking_status_id, b.created_at, b.updated_at, h.admin_id, h.title
		FROM house_bookmarks b
		JOIN houses h ON h.id = b.house_id
		WHERE b.user_id = ? AND b.house_id = ?
	`, userID, houseID).Scan(
		&b.ID, &b.UserID, &b.HouseID, &b.TrackingStatusID,
		&b.CreatedAt, &b.UpdatedAt, &b.HouseAdminID, &b.HouseTitle,
	)
	return b, err
}

// UpdateTrackingStatus applies the transition with an optimistic guard on
// the previously-read status. Zero rows affected means another transition
// won the race (or the bookmark vanished); the caller maps that to a
// conflict instead of retrying.
func (r BookmarkRepository) UpdateTrackingStatus(bookmarkID int64, fromStatusID, toStatusID int, updatedAt time.Time) (int64, error) {
	res, err := r.db().Exec(`
		UPDATE house_bookmarks
		SET tracking_status_id = ?, updated_at = ?
		WHERE id = ? AND tracking_status_id = ?
	`, toStatusID, updatedAt, bookmarkID, fromStatusID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateTrackingStatusByUser lets a user move their own bookmark; no
// ownership scope applies because the predicate is the user's own id.
func (r BookmarkRepository) UpdateTrackingStatusByUser(userID string, houseID int64, statusID int, updatedAt time.Time) (int64, error) {
	res, err := r.db().Exec(`
		UPDATE house_bookmarks
		SET tracking_status_id = ?, updated_at = ?
		WHERE user_id = ? AND house_id = ?
	`, statusID, updatedAt, userID, houseID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r BookmarkRepository) ExistsByUserAndHouse(userID string, houseID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM house_bookmarks WHERE user_id = ? AND house_id = ?
	`, userID, houseID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r BookmarkRepository) Create(userID string, houseID int64, statusID int, now time.Time) (models.HouseBookmark, error) {
	res, err := r.db().Exec(`
		INSERT INTO house_bookmarks (user_id, house_id, tracking_status_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, userID, houseID, statusID, now, now)
	if err != nil {
		return models.HouseBookmark{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.HouseBookmark{}, err
	}
	return models.HouseBookmark{
		ID:               id,
		UserID:           userID,
		HouseID:          houseID,
		TrackingStatusID: statusID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// CountByOwner counts bookmarks on houses the admin owns. The ownership
// scope is expressed transitively through the house join.
func (r BookmarkRepository) CountByOwner(adminID string) (int, error) {
	var total int
	err := r.db().QueryRow(`
		SELECT COUNT(*)
		FROM house_bookmarks b
		JOIN houses h ON h.id = b.house_id
		WHERE h.admin_id = ?
	`, adminID).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ListFinancingByOwner returns one page of the admin's financing pipeline,
// newest bookmark first with the bookmark id as the tie-break.
func (r BookmarkRepository) ListFinancingByOwner(adminID string, limit, offset int) ([]FinancingUser, error) {
	rows, err := r.db().Query(`
		SELECT h.id, h.title, u.id, u.name, u.phone_number, u.email, pr.name, ts.name, b.created_at, b.updated_at
		FROM house_bookmarks b
		JOIN houses h ON h.id = b.house_id
		JOIN users u ON u.id = b.user_id
		JOIN tracking_statuses ts ON ts.id = b.tracking_status_id
		LEFT JOIN profile_risks pr ON pr.id = u.profile_risk_id
		WHERE h.admin_id = ?
		ORDER BY b.created_at DESC, b.id ASC
		LIMIT ? OFFSET ?
	`, adminID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []FinancingUser{}
	for rows.Next() {
		var f FinancingUser
		if err := rows.Scan(
			&f.HouseID, &f.HouseTitle, &f.UserID, &f.UserName, &f.UserPhone,
			&f.UserEmail, &f.ProfileRisk, &f.StatusName, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ListForHouse returns everyone who bookmarked the given house.
func (r BookmarkRepository) ListForHouse(houseID int64) ([]HouseBookmarker, error) {
	rows, err := r.db().Query(`
		SELECT u.id, u.name, u.phone_number, pr.id, pr.name, ts.id, ts.name, b.created_at
		FROM house_bookmarks b
		JOIN users u ON u.id = b.user_id
		JOIN tracking_statuses ts ON ts.id = b.tracking_status_id
		LEFT JOIN profile_risks pr ON pr.id = u.profile_risk_id
		WHERE b.house_id = ?
		ORDER BY b.created_at DESC, b.id ASC
	`, houseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HouseBookmarker{}
	for rows.Next() {
		var m HouseBookmarker
		if err := rows.Scan(
			&m.UserID, &m.UserName, &m.UserPhone,
			&m.ProfileRiskID, &m.ProfileRisk,
			&m.StatusID, &m.StatusName, &m.BookmarkedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListByUser returns the user's bookmarked houses with their status code.
func (r BookmarkRepository) ListByUser(userID string) ([]UserBookmark, error) {
	rows, err := r.db().Query(`
		SELECT h.id, h.admin_id, h.title, h.location, h.price, h.room_count, h.bathroom_count, h.parking_count, h.land_area, h.building_area, h.image_url, h.created_at, ts.id, ts.name
		FROM house_bookmarks b
		JOIN houses h ON h.id = b.house_id
		JOIN tracking_statuses ts ON ts.id = b.tracking_status_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC, b.id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []UserBookmark{}
	for rows.Next() {
		var ub UserBookmark
		var imageURL sql.NullString
		if err := rows.Scan(
			&ub.House.ID, &ub.House.AdminID, &ub.House.Title, &ub.House.Location,
			&ub.House.Price, &ub.House.RoomCount, &ub.House.BathroomCount,
			&ub.House.ParkingCount, &ub.House.LandArea, &ub.House.BuildingArea,
			&imageURL, &ub.House.CreatedAt, &ub.StatusID, &ub.StatusName,
		); err != nil {
			return nil, err
		}
		ub.House.ImageURL = imageURL.String
		out = append(out, ub)
	}
	return out, rows.Err()
}
