package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/utils"
)

// TrackingService moves a bookmark between financing tracking statuses on
// behalf of the admin who owns the bookmarked house.
//
// Any status may move to any other status; the catalog defines valid
// states, not valid edges.
type TrackingService struct {
	BookmarkRepo repositories.BookmarkRepository
	Catalog      *tracking.Catalog
	RequestID    string
	Now          func() time.Time
}

// TrackingUpdate is the denormalized result handed straight to the caller:
// display-cased status name and formatted timestamps included, so consumers
// never see raw status codes.
type TrackingUpdate struct {
	BookmarkID     int64           `json:"bookmark_id"`
	HouseID        int64           `json:"house_id"`
	HouseTitle     string          `json:"house_title"`
	UserID         string          `json:"user_id"`
	TrackingStatus tracking.Status `json:"tracking_status"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

func (s TrackingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// UpdateTrackingStatus validates and applies a transition. The checks run
// in a fixed order so each failure mode stays distinguishable:
// missing bookmark, foreign owner, no-op transition, unknown status.
func (s TrackingService) UpdateTrackingStatus(adminID, userID string, houseID int64, newStatusID int) (TrackingUpdate, error) {
	bookmark, err := s.BookmarkRepo.FindByUserAndHouse(userID, houseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingUpdate{}, domain.NotFoundError{Resource: "bookmark"}
		}
		return TrackingUpdate{}, domain.InternalError{Msg: "gagal mengambil data bookmark", Err: err}
	}

	if bookmark.HouseAdminID != adminID {
		return TrackingUpdate{}, domain.ForbiddenError{
			Msg: "Anda tidak memiliki akses untuk mengubah tracking status ini",
		}
	}

	if bookmark.TrackingStatusID == newStatusID {
		return TrackingUpdate{}, domain.ConflictError{
			Resource: "tracking status",
			Msg:      "status baru sama dengan status saat ini",
		}
	}

	status, ok := s.Catalog.ByID(newStatusID)
	if !ok {
		return TrackingUpdate{}, domain.NotFoundError{Resource: "tracking status"}
	}

	// Conditional update keyed on the status read above. A concurrent
	// transition makes this a no-op rather than silently overwriting it.
	now := s.now()
	affected, err := s.BookmarkRepo.UpdateTrackingStatus(bookmark.ID, bookmark.TrackingStatusID, newStatusID, now)
	if err != nil {
		return TrackingUpdate{}, domain.InternalError{Msg: "gagal memperbarui tracking status", Err: err}
	}
	if affected == 0 {
		return TrackingUpdate{}, domain.ConflictError{
			Resource: "tracking status",
			Msg:      "bookmark sedang diubah oleh proses lain",
		}
	}

	utils.LogEvent(s.RequestID, "tracking", "update_status",
		fmt.Sprintf("bookmark_id=%d from=%d to=%d", bookmark.ID, bookmark.TrackingStatusID, newStatusID))

	return TrackingUpdate{
		BookmarkID: bookmark.ID,
		HouseID:    bookmark.HouseID,
		HouseTitle: bookmark.HouseTitle,
		UserID:     bookmark.UserID,
		TrackingStatus: tracking.Status{
			ID:   status.ID,
			Name: tracking.DisplayName(status.Name),
		},
		CreatedAt: utils.FormatTanggalIndonesia(bookmark.CreatedAt),
		UpdatedAt: utils.FormatTanggalIndonesia(now),
	}, nil
}
