package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/domain/models"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/pagination"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/utils"
)

// AdminService serves the branch admin's read surface. Every query in here
// is scoped to the acting admin's own houses; an admin who owns nothing
// gets empty pages, never an error and never someone else's data.
type AdminService struct {
	AdminRepo    repositories.AdminRepository
	UserRepo     repositories.UserRepository
	HouseRepo    repositories.HouseRepository
	BookmarkRepo repositories.BookmarkRepository
	Catalog      *tracking.Catalog
	RequestID    string
}

type HouseRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type FinancingUserInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phone_number"`
	Email       string  `json:"email"`
	ProfileRisk *string `json:"profile_risk"`
}

// FinancingUserRow is one entry of the financing pipeline list.
type FinancingUserRow struct {
	House          HouseRef          `json:"house"`
	User           FinancingUserInfo `json:"user"`
	TrackingStatus string            `json:"tracking_status"`
	CreatedAt      string            `json:"created_at"`
}

// GetFinancingUsers lists everyone who bookmarked one of the admin's
// houses, newest bookmark first, paginated.
func (s AdminService) GetFinancingUsers(adminID string, page, limit int) (pagination.Envelope[FinancingUserRow], error) {
	total, err := s.BookmarkRepo.CountByOwner(adminID)
	if err != nil {
		return pagination.Envelope[FinancingUserRow]{}, domain.InternalError{Msg: "gagal menghitung financing users", Err: err}
	}

	limit = pagination.ValidateLimit(limit)
	page = pagination.ValidatePage(page, total, limit)

	rows, err := s.BookmarkRepo.ListFinancingByOwner(adminID, limit, pagination.Offset(page, limit))
	if err != nil {
		return pagination.Envelope[FinancingUserRow]{}, domain.InternalError{Msg: "gagal mengambil financing users", Err: err}
	}

	data := make([]FinancingUserRow, 0, len(rows))
	for _, row := range rows {
		data = append(data, FinancingUserRow{
			House: HouseRef{ID: row.HouseID, Title: row.HouseTitle},
			User: FinancingUserInfo{
				ID:          row.UserID,
				Name:        row.UserName,
				PhoneNumber: row.UserPhone,
				Email:       row.UserEmail,
				ProfileRisk: displayRisk(row.ProfileRisk),
			},
			TrackingStatus: tracking.DisplayName(row.StatusName),
			CreatedAt:      utils.FormatTanggalIndonesia(row.CreatedAt),
		})
	}

	utils.LogEvent(s.RequestID, "admin", "financing_users", fmt.Sprintf("total=%d page=%d", total, page))
	return pagination.Paginate(data, total, page, limit), nil
}

// PotentialUser is a bookmarker as shown in the admin's house list.
type PotentialUser struct {
	Name         string  `json:"name"`
	ProfileRisk  *string `json:"profile_risk"`
	BookmarkedAt string  `json:"bookmarked_at"`
}

// AdminHouseRow is one of the admin's listings with its interest summary.
type AdminHouseRow struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	ParkingCount        int             `json:"parking_count"`
	BathroomCount       int             `json:"bathroom_count"`
	RoomCount           int             `json:"room_count"`
	Price               int64           `json:"price"`
	ImgURL              string          `json:"img_url"`
	CreatedAt           string          `json:"created_at"`
	TotalPotentialUsers int             `json:"total_potential_users"`
	Users               []PotentialUser `json:"users"`
}

// GetHousesByAdmin pages through the admin's own listings and annotates each
// with the users who bookmarked it. Within a page, houses with the most
// interested users come first.
func (s AdminService) GetHousesByAdmin(adminID string, page, limit int) (pagination.Envelope[AdminHouseRow], error) {
	total, err := s.HouseRepo.Count(repositories.HouseFilter{}, adminID)
	if err != nil {
		return pagination.Envelope[AdminHouseRow]{}, domain.InternalError{Msg: "gagal menghitung rumah", Err: err}
	}

	limit = pagination.ValidateLimit(limit)
	page = pagination.ValidatePage(page, total, limit)

	houses, err := s.HouseRepo.Find(repositories.HouseFilter{}, adminID, limit, pagination.Offset(page, limit))
	if err != nil {
		return pagination.Envelope[AdminHouseRow]{}, domain.InternalError{Msg: "gagal mengambil rumah", Err: err}
	}

	data := make([]AdminHouseRow, 0, len(houses))
	for _, h := range houses {
		bookmarkers, err := s.BookmarkRepo.ListForHouse(h.ID)
		if err != nil {
			return pagination.Envelope[AdminHouseRow]{}, domain.InternalError{Msg: "gagal mengambil peminat rumah", Err: err}
		}

		users := make([]PotentialUser, 0, len(bookmarkers))
		for _, b := range bookmarkers {
			users = append(users, PotentialUser{
				Name:         b.UserName,
				ProfileRisk:  displayRisk(b.ProfileRisk),
				BookmarkedAt: utils.FormatTanggalIndonesia(b.BookmarkedAt),
			})
		}

		data = append(data, AdminHouseRow{
			ID:                  h.ID,
			Title:               h.Title,
			ParkingCount:        h.ParkingCount,
			BathroomCount:       h.BathroomCount,
			RoomCount:           h.RoomCount,
			Price:               h.Price,
			ImgURL:              h.ImageURL,
			CreatedAt:           utils.FormatTanggalIndonesia(h.CreatedAt),
			TotalPotentialUsers: len(users),
			Users:               users,
		})
	}

	sort.SliceStable(data, func(i, j int) bool {
		return data[i].TotalPotentialUsers > data[j].TotalPotentialUsers
	})

	return pagination.Paginate(data, total, page, limit), nil
}

// HouseDetailBookmarker adds the core-banking salary to a bookmarker.
type HouseDetailBookmarker struct {
	User struct {
		Name        string           `json:"name"`
		ProfileRisk *tracking.Status `json:"profile_risk"`
		Salary      int64            `json:"salary"`
	} `json:"user"`
	TrackingStatus tracking.Status `json:"tracking_status"`
}

// HouseDetail is the admin's full view of one owned listing.
type HouseDetail struct {
	models.House
	CreatedAtDisplay string                  `json:"created_at_display"`
	TotalData        int                     `json:"total_data"`
	HouseBookmarks   []HouseDetailBookmarker `json:"house_bookmarks"`
}

// GetHouseDetail returns the owned house with everyone tracking it. A house
// owned by another admin is Forbidden, a missing house is NotFound.
func (s AdminService) GetHouseDetail(houseID int64, adminID string) (HouseDetail, error) {
	house, err := s.HouseRepo.GetByID(houseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HouseDetail{}, domain.NotFoundError{Resource: "house"}
		}
		return HouseDetail{}, domain.InternalError{Msg: "gagal mengambil rumah", Err: err}
	}
	if house.AdminID != adminID {
		return HouseDetail{}, domain.ForbiddenError{Msg: "Anda tidak memiliki akses ke detail rumah ini"}
	}

	bookmarkers, err := s.BookmarkRepo.ListForHouse(houseID)
	if err != nil {
		return HouseDetail{}, domain.InternalError{Msg: "gagal mengambil peminat rumah", Err: err}
	}

	detail := HouseDetail{
		House:            house,
		CreatedAtDisplay: utils.FormatTanggalIndonesia(house.CreatedAt),
		TotalData:        len(bookmarkers),
		HouseBookmarks:   make([]HouseDetailBookmarker, 0, len(bookmarkers)),
	}

	for _, b := range bookmarkers {
		// Salary is best-effort enrichment from core banking; a missing
		// profile reads as zero.
		salary, err := s.UserRepo.SalaryByPhone(b.UserPhone)
		if err != nil {
			return HouseDetail{}, domain.InternalError{Msg: "gagal mengambil data gaji", Err: err}
		}

		var entry HouseDetailBookmarker
		entry.User.Name = b.UserName
		entry.User.Salary = salary
		if b.ProfileRiskID.Valid {
			entry.User.ProfileRisk = &tracking.Status{
				ID:   int(b.ProfileRiskID.Int64),
				Name: tracking.DisplayName(b.ProfileRisk.String),
			}
		}
		entry.TrackingStatus = tracking.Status{
			ID:   b.StatusID,
			Name: tracking.DisplayName(b.StatusName),
		}
		detail.HouseBookmarks = append(detail.HouseBookmarks, entry)
	}

	return detail, nil
}

// FinancingUserDocuments mirrors the uploaded document URLs.
type FinancingUserDocuments struct {
	KTPURL     *string `json:"ktp_url"`
	NPWPURL    *string `json:"npwp_url"`
	PayslipURL *string `json:"payslip_url"`
	CreatedAt  string  `json:"created_at"`
}

// FinancingUserDetail is the admin's drill-down into one applicant.
type FinancingUserDetail struct {
	User struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Email       string  `json:"email"`
		PhoneNumber string  `json:"phone_number"`
		ProfileRisk *string `json:"profile_risk"`
	} `json:"user"`
	Documents *FinancingUserDocuments `json:"documents"`
	Bookmark  *struct {
		House          models.House    `json:"house"`
		TrackingStatus tracking.Status `json:"tracking_status"`
	} `json:"bookmark"`
}

// GetFinancingUserDetail loads an applicant plus their bookmark on the given
// house. The bookmark block is present only when the acting admin owns that
// house; scoping hides, it does not error.
func (s AdminService) GetFinancingUserDetail(adminID, userID string, houseID int64) (FinancingUserDetail, error) {
	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FinancingUserDetail{}, domain.NotFoundError{Resource: "user"}
		}
		return FinancingUserDetail{}, domain.InternalError{Msg: "gagal mengambil data user", Err: err}
	}

	var detail FinancingUserDetail
	detail.User.ID = user.ID
	detail.User.Name = user.Name
	detail.User.Email = user.Email
	detail.User.PhoneNumber = user.PhoneNumber
	if user.ProfileRisk != nil {
		name := user.ProfileRisk.Name
		detail.User.ProfileRisk = &name
	}

	if doc, err := s.UserRepo.GetDocument(userID); err == nil {
		detail.Documents = &FinancingUserDocuments{
			KTPURL:     nullableString(doc.KTPURL),
			NPWPURL:    nullableString(doc.NPWPURL),
			PayslipURL: nullableString(doc.PayslipURL),
			CreatedAt:  utils.FormatTanggalIndonesia(doc.CreatedAt),
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		return FinancingUserDetail{}, domain.InternalError{Msg: "gagal mengambil dokumen user", Err: err}
	}

	house, err := s.HouseRepo.GetByIDForAdmin(houseID, adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return detail, nil
		}
		return FinancingUserDetail{}, domain.InternalError{Msg: "gagal mengambil rumah", Err: err}
	}

	bookmark, err := s.BookmarkRepo.FindByUserAndHouse(userID, houseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return detail, nil
		}
		return FinancingUserDetail{}, domain.InternalError{Msg: "gagal mengambil bookmark", Err: err}
	}

	status, ok := s.Catalog.ByID(bookmark.TrackingStatusID)
	if !ok {
		return FinancingUserDetail{}, domain.InternalError{Msg: "tracking status tidak dikenal pada bookmark"}
	}

	detail.Bookmark = &struct {
		House          models.House    `json:"house"`
		TrackingStatus tracking.Status `json:"tracking_status"`
	}{
		House: house,
		TrackingStatus: tracking.Status{
			ID:   status.ID,
			Name: tracking.DisplayName(status.Name),
		},
	}
	return detail, nil
}

// AdminDetail is the admin's own profile with branch.
type AdminDetail struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	Branch    *models.Branch `json:"branch"`
}

func (s AdminService) GetAdminDetail(adminID string) (AdminDetail, error) {
	admin, err := s.AdminRepo.GetByID(adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdminDetail{}, domain.NotFoundError{Resource: "admin"}
		}
		return AdminDetail{}, domain.InternalError{Msg: "gagal mengambil data admin", Err: err}
	}

	return AdminDetail{
		ID:        admin.ID,
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: utils.FormatTanggalIndonesia(admin.CreatedAt),
		UpdatedAt: utils.FormatTanggalIndonesia(admin.UpdatedAt),
		Branch:    admin.Branch,
	}, nil
}

func displayRisk(risk sql.NullString) *string {
	if !risk.Valid {
		return nil
	}
	name := tracking.DisplayName(risk.String)
	return &name
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
