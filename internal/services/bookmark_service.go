package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/utils"
)

// BookmarkService covers the user-facing bookmark surface: creating a
// bookmark, listing bookmarked houses and reading the status catalog.
type BookmarkService struct {
	BookmarkRepo repositories.BookmarkRepository
	HouseRepo    repositories.HouseRepository
	Catalog      *tracking.Catalog
	RequestID    string
	Now          func() time.Time
}

// BookmarkedHouse is a house in the user's bookmark list, status already
// display-cased.
type BookmarkedHouse struct {
	models.House
	TrackingStatus tracking.Status `json:"tracking_status"`
}

func (s BookmarkService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBookmark adds a (user, house) bookmark. The pair is unique: a second
// bookmark for the same house is a conflict, not an upsert.
func (s BookmarkService) CreateBookmark(userID string, houseID int64, statusID int) (models.HouseBookmark, error) {
	if statusID == 0 {
		statusID = 1 // WAITING_FOR_SALES, the entry state for new interest
	}
	if _, ok := s.Catalog.ByID(statusID); !ok {
		return models.HouseBookmark{}, domain.ValidationError{Field: "tracking_status_id", Msg: "status tidak dikenal"}
	}

	if _, err := s.HouseRepo.GetByID(houseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.HouseBookmark{}, domain.ValidationError{Field: "house_id", Msg: "rumah tidak ditemukan"}
		}
		return models.HouseBookmark{}, domain.InternalError{Msg: "gagal memeriksa rumah", Err: err}
	}

	exists, err := s.BookmarkRepo.ExistsByUserAndHouse(userID, houseID)
	if err != nil {
		return models.HouseBookmark{}, domain.InternalError{Msg: "gagal memeriksa bookmark", Err: err}
	}
	if exists {
		return models.HouseBookmark{}, domain.ConflictError{Resource: "bookmark", Msg: "rumah sudah ada di bookmark"}
	}

	bookmark, err := s.BookmarkRepo.Create(userID, houseID, statusID, s.now())
	if err != nil {
		return models.HouseBookmark{}, domain.InternalError{Msg: "gagal menyimpan bookmark", Err: err}
	}

	utils.LogEvent(s.RequestID, "bookmarks", "create", fmt.Sprintf("house_id=%d", houseID))
	return bookmark, nil
}

// ListBookmarks returns the user's bookmarked houses. An empty list is a
// normal outcome.
func (s BookmarkService) ListBookmarks(userID string) ([]BookmarkedHouse, error) {
	rows, err := s.BookmarkRepo.ListByUser(userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "gagal mengambil bookmark", Err: err}
	}

	out := make([]BookmarkedHouse, 0, len(rows))
	for _, row := range rows {
		out = append(out, BookmarkedHouse{
			House: row.House,
			TrackingStatus: tracking.Status{
				ID:   row.StatusID,
				Name: tracking.DisplayName(row.StatusName),
			},
		})
	}
	return out, nil
}

// Statuses exposes the catalog in order.
func (s BookmarkService) Statuses() []tracking.Status {
	return s.Catalog.All()
}

// UpdateOwnStatus lets a user move their own bookmark, e.g. to CANCELED.
// No ownership scope applies; the predicate is the user's own id.
func (s BookmarkService) UpdateOwnStatus(userID string, houseID int64, statusID int) error {
	if _, ok := s.Catalog.ByID(statusID); !ok {
		return domain.NotFoundError{Resource: "tracking status"}
	}

	affected, err := s.BookmarkRepo.UpdateTrackingStatusByUser(userID, houseID, statusID, s.now())
	if err != nil {
		return domain.InternalError{Msg: "gagal memperbarui tracking status", Err: err}
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "bookmark"}
	}

	utils.LogEvent(s.RequestID, "bookmarks", "update_own_status", fmt.Sprintf("house_id=%d to=%d", houseID, statusID))
	return nil
}
