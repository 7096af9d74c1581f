package services

import (
	"testing"
	"time"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"

	"github.com/DATA-DOG/go-sqlmock"
)

var trackingTestNow = time.Date(2025, 1, 6, 14, 30, 0, 0, time.Local)

func newTrackingService(t *testing.T) (TrackingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := TrackingService{
		BookmarkRepo: repositories.BookmarkRepository{DB: db},
		Catalog:      tracking.Default(),
		Now:          func() time.Time { return trackingTestNow },
	}
	return svc, mock, func() { db.Close() }
}

func expectBookmarkLookup(mock sqlmock.Sqlmock, userID string, houseID int64, statusID int, adminID string) {
	rows := sqlmock.NewRows([]string{"id", "user_id", "house_id", "tracking_status_id", "created_at", "updated_at", "admin_id", "title"}).
		AddRow(5, userID, houseID, statusID, trackingTestNow, trackingTestNow, adminID, "Rumah Melati")
	mock.ExpectQuery("FROM house_bookmarks b").WithArgs(userID, houseID).WillReturnRows(rows)
}

func TestUpdateTrackingStatusAppliesTransition(t *testing.T) {
	svc, mock, closeDB := newTrackingService(t)
	defer closeDB()

	expectBookmarkLookup(mock, "user-1", 7, 1, "admin-1")
	mock.ExpectExec("UPDATE house_bookmarks").
		WithArgs(2, trackingTestNow, int64(5), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.UpdateTrackingStatus("admin-1", "user-1", 7, 2)
	if err != nil {
		t.Fatalf("UpdateTrackingStatus returned error: %v", err)
	}
	if res.BookmarkID != 5 || res.HouseID != 7 {
		t.Fatalf("unexpected result identity: %+v", res)
	}
	if res.TrackingStatus.ID != 2 || res.TrackingStatus.Name != "Contacted" {
		t.Fatalf("expected display-cased Contacted, got %+v", res.TrackingStatus)
	}
	if res.UpdatedAt != "Senin 06 Januari 2025 14:30" {
		t.Fatalf("unexpected updated_at: %q", res.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateTrackingStatusRejectsRepeat(t *testing.T) {
	svc, mock, closeDB := newTrackingService(t)
	defer closeDB()

	expectBookmarkLookup(mock, "user-1", 7, 3, "admin-1")

	_, err := svc.UpdateTrackingStatus("admin-1", "user-1", 7, 3)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for repeated status, got %v", err)
	}
}

func TestUpdateTrackingStatusForeignOwnerForbidden(t *testing.T) {
	svc, mock, closeDB := newTrackingService(t)
	defer closeDB()

	expectBookmarkLookup(mock, "user-1", 7, 1, "admin-2")

	_, err := svc.UpdateTrackingStatus("admin-1", "user-1", 7, 2)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for foreign owner, got %v", err)
	}
}

func TestUpdateTrackingStatusUnknownStatus(t *testing.T) {
	svc, mock, closeDB := newTrackingService(t)
	defer closeDB()

	expectBookmarkLookup(mock, "user-1", 7, 1, "admin-1")

	_, err := svc.UpdateTrackingStatus("admin-1", "user-1", 7, 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown status, got %v", err)
	}
}

func TestUpdateTrackingStatusMissingBookmark(t *testing.T) {
	svc, mock, closeDB := newTrackingService(t)
	defer closeDB()

	mock.ExpectQuery("FROM house_bookmarks b").WithArgs("user-1", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "house_id", "tracking_status_id", "created_at", "updated_at", "admin_id", "title"}))

	_, err := svc.UpdateTrackingStatus("admin-1", "user-1", 7, 2)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing bookmark, got %v", err)
	}
}

func TestUpdateTrackingStatusLostRaceConflicts(t *testing.T) {
	svc, mock, closeDB := newTrackingService(t)
	defer closeDB()

	expectBookmarkLookup(mock, "user-1", 7, 1, "admin-1")
	mock.ExpectExec("UPDATE house_bookmarks").
		WithArgs(2, trackingTestNow, int64(5), 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.UpdateTrackingStatus("admin-1", "user-1", 7, 2)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict when conditional update matched nothing, got %v", err)
	}
}
