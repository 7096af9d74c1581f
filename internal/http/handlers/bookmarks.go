package handlers

import (
	"net/http"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/http/middleware"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/services"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/tracking"

	"github.com/gin-gonic/gin"
)

// statusCatalog is process-wide reference data, seeded at startup.
var statusCatalog = tracking.Default()

// SetStatusCatalog swaps the shared catalog, e.g. when loading it from the
// database at boot.
func SetStatusCatalog(cat *tracking.Catalog) {
	if cat != nil {
		statusCatalog = cat
	}
}

func bookmarkService(c *gin.Context) services.BookmarkService {
	return services.BookmarkService{
		Catalog:   statusCatalog,
		RequestID: middleware.GetRequestID(c),
	}
}

type createBookmarkRequest struct {
	HouseID          int64 `json:"house_id"`
	TrackingStatusID int   `json:"tracking_status_id"`
}

// POST /api/bookmarks
func CreateBookmark(c *gin.Context) {
	var req createBookmarkRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.HouseID <= 0 {
		RespondError(c, http.StatusBadRequest, "house_id wajib diisi", nil)
		return
	}

	bookmark, err := bookmarkService(c).CreateBookmark(middleware.GetSubjectID(c), req.HouseID, req.TrackingStatusID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "bookmark tersimpan", "data": bookmark})
}

// GET /api/bookmarks
func GetBookmarks(c *gin.Context) {
	out, err := bookmarkService(c).ListBookmarks(middleware.GetSubjectID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/bookmarks/status
func GetTrackingStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": bookmarkService(c).Statuses()})
}

type updateOwnStatusRequest struct {
	HouseID          int64 `json:"house_id"`
	TrackingStatusID int   `json:"tracking_status_id"`
}

// PUT /api/bookmarks/tracking-status
func UpdateOwnTrackingStatus(c *gin.Context) {
	var req updateOwnStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.HouseID <= 0 || req.TrackingStatusID <= 0 {
		RespondError(c, http.StatusBadRequest, "house_id dan tracking_status_id wajib diisi", nil)
		return
	}

	if err := bookmarkService(c).UpdateOwnStatus(middleware.GetSubjectID(c), req.HouseID, req.TrackingStatusID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tracking status diperbarui"})
}
