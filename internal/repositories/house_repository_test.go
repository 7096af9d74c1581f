package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func int64p(v int64) *int64     { return &v }
func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestBuildHouseWhereEmptyFilter(t *testing.T) {
	where, args := buildHouseWhere(HouseFilter{}, "")
	if where != "" {
		t.Fatalf("empty filter should produce no WHERE clause, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("empty filter should produce no args, got %v", args)
	}
}

func TestBuildHouseWhereLonePriceBoundIgnored(t *testing.T) {
	// Range filters require both bounds; a lone min must not filter at all.
	where, args := buildHouseWhere(HouseFilter{MinPrice: int64p(500)}, "")
	if strings.Contains(where, "price") {
		t.Fatalf("lone min_price must be ignored, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("lone min_price must not bind args, got %v", args)
	}

	where, args = buildHouseWhere(HouseFilter{MinPrice: int64p(500), MaxPrice: int64p(900)}, "")
	if !strings.Contains(where, "price >= ? AND price <= ?") {
		t.Fatalf("both bounds should activate the price range, got %q", where)
	}
	if len(args) != 2 || args[0] != int64(500) || args[1] != int64(900) {
		t.Fatalf("unexpected price args: %v", args)
	}
}

func TestBuildHouseWhereSearchSpansTitleAndLocation(t *testing.T) {
	where, args := buildHouseWhere(HouseFilter{Search: "Jakarta"}, "")
	if !strings.Contains(where, "(LOWER(title) LIKE ? OR LOWER(location) LIKE ?)") {
		t.Fatalf("search must OR title and location, got %q", where)
	}
	if len(args) != 2 || args[0] != "%jakarta%" || args[1] != "%jakarta%" {
		t.Fatalf("search pattern should be lowercased substring, got %v", args)
	}
}

func TestBuildHouseWhereOwnershipScope(t *testing.T) {
	where, args := buildHouseWhere(HouseFilter{RoomCount: intp(3)}, "admin-1")
	if !strings.HasPrefix(where, " WHERE admin_id = ?") {
		t.Fatalf("ownership predicate must lead the clause, got %q", where)
	}
	if !strings.Contains(where, "room_count = ?") {
		t.Fatalf("room filter missing, got %q", where)
	}
	if len(args) != 2 || args[0] != "admin-1" || args[1] != 3 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestBuildHouseWhereAreaRanges(t *testing.T) {
	f := HouseFilter{
		MinLandArea:     floatp(90),
		MaxLandArea:     floatp(200),
		MinBuildingArea: floatp(45),
	}
	where, args := buildHouseWhere(f, "")
	if !strings.Contains(where, "land_area >= ? AND land_area <= ?") {
		t.Fatalf("land area range missing, got %q", where)
	}
	if strings.Contains(where, "building_area") {
		t.Fatalf("lone building-area bound must be ignored, got %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestHouseRepositoryFindOrdersAndWindows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "admin_id", "title", "location", "price", "room_count",
		"bathroom_count", "parking_count", "land_area", "building_area", "image_url", "created_at",
	}).AddRow(7, "admin-1", "Rumah Cluster Bintaro", "Tangerang Selatan", 850000000, 3, 2, 1, 120.0, 90.0, nil, now)

	mock.ExpectQuery(`SELECT (.+) FROM houses WHERE admin_id = \? ORDER BY created_at DESC, id ASC LIMIT \? OFFSET \?`).
		WithArgs("admin-1", 10, 20).
		WillReturnRows(rows)

	repo := HouseRepository{DB: db}
	houses, err := repo.Find(HouseFilter{}, "admin-1", 10, 20)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(houses) != 1 {
		t.Fatalf("expected 1 house, got %d", len(houses))
	}
	if houses[0].ID != 7 || houses[0].Title != "Rumah Cluster Bintaro" || houses[0].ImageURL != "" {
		t.Fatalf("unexpected row: %+v", houses[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHouseRepositoryCountSharesPredicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM houses WHERE \(LOWER\(title\) LIKE \? OR LOWER\(location\) LIKE \?\)`).
		WithArgs("%jakarta%", "%jakarta%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	repo := HouseRepository{DB: db}
	total, err := repo.Count(HouseFilter{Search: "jakarta"}, "")
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if total != 25 {
		t.Fatalf("total = %d, want 25", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
