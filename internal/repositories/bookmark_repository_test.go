package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestUpdateTrackingStatusGuardsOnPreviousStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 1, 6, 14, 30, 0, 0, time.Local)
	mock.ExpectExec(`UPDATE house_bookmarks SET tracking_status_id = \?, updated_at = \? WHERE id = \? AND tracking_status_id = \?`).
		WithArgs(2, now, int64(5), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookmarkRepository{DB: db}
	affected, err := repo.UpdateTrackingStatus(5, 1, 2, now)
	if err != nil {
		t.Fatalf("UpdateTrackingStatus returned error: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountByOwnerScopesThroughHouseJoin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("admin-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := BookmarkRepository{DB: db}
	total, err := repo.CountByOwner("admin-1")
	if err != nil {
		t.Fatalf("CountByOwner returned error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected 3, got %d", total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListFinancingByOwnerOrdersNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"house_id", "house_title", "user_id", "user_name", "phone_number",
		"email", "risk", "status", "created_at", "updated_at",
	}).
		AddRow(int64(2), "Rumah B", "user-2", "Sari", "0812", "sari@mail.com", nil, "WAITING_FOR_SALES", now, now).
		AddRow(int64(1), "Rumah A", "user-1", "Budi", "0811", "budi@mail.com", "GOOD", "CONTACTED", now.Add(-time.Hour), now)
	mock.ExpectQuery(`ORDER BY b\.created_at DESC, b\.id ASC LIMIT \? OFFSET \?`).
		WithArgs("admin-1", 10, 0).
		WillReturnRows(rows)

	repo := BookmarkRepository{DB: db}
	out, err := repo.ListFinancingByOwner("admin-1", 10, 0)
	if err != nil {
		t.Fatalf("ListFinancingByOwner returned error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].UserName != "Sari" || out[1].UserName != "Budi" {
		t.Fatalf("row order not preserved: %+v", out)
	}
	if out[0].ProfileRisk.Valid {
		t.Fatalf("expected missing risk to scan as invalid, got %+v", out[0].ProfileRisk)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
