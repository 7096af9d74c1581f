package handlers

import (
	"net/http"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/http/middleware"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func adminService(c *gin.Context) services.AdminService {
	return services.AdminService{
		Catalog:   statusCatalog,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/admin/financing-users
func GetFinancingUsers(c *gin.Context) {
	page, limit := pageParams(c)
	env, err := adminService(c).GetFinancingUsers(middleware.GetSubjectID(c), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

type updateTrackingStatusRequest struct {
	UserID           string `json:"user_id"`
	HouseID          int64  `json:"house_id"`
	TrackingStatusID int    `json:"tracking_status_id"`
}

// PUT /api/admin/update-tracking-status
func UpdateTrackingStatus(c *gin.Context) {
	var req updateTrackingStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.UserID == "" || req.HouseID <= 0 || req.TrackingStatusID <= 0 {
		RespondError(c, http.StatusBadRequest, "user_id, house_id dan tracking_status_id wajib diisi", nil)
		return
	}

	svc := services.TrackingService{
		Catalog:   statusCatalog,
		RequestID: middleware.GetRequestID(c),
	}
	res, err := svc.UpdateTrackingStatus(middleware.GetSubjectID(c), req.UserID, req.HouseID, req.TrackingStatusID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tracking status diperbarui", "data": res})
}

// GET /api/admin/houses
func GetAdminHouses(c *gin.Context) {
	page, limit := pageParams(c)
	env, err := adminService(c).GetHousesByAdmin(middleware.GetSubjectID(c), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

// GET /api/admin/houses/search
func SearchAdminHouses(c *gin.Context) {
	page, limit := pageParams(c)
	svc := services.HouseService{RequestID: middleware.GetRequestID(c)}

	env, err := svc.FindHousesByOwner(middleware.GetSubjectID(c), houseFilterFromQuery(c), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

// GET /api/admin/house-detail/:id
func GetAdminHouseDetail(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	detail, err := adminService(c).GetHouseDetail(id, middleware.GetSubjectID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GET /api/admin/financing-users/:userId/house/:houseId
func GetFinancingUserDetail(c *gin.Context) {
	houseID, ok := paramInt64(c, "houseId")
	if !ok {
		return
	}
	userID := c.Param("userId")
	if userID == "" {
		RespondError(c, http.StatusBadRequest, "parameter userId tidak valid", nil)
		return
	}

	detail, err := adminService(c).GetFinancingUserDetail(middleware.GetSubjectID(c), userID, houseID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GET /api/admin/detail
func GetAdminDetail(c *gin.Context) {
	detail, err := adminService(c).GetAdminDetail(middleware.GetSubjectID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// GET /api/admin/financing-report
func GetFinancingReportPDF(c *gin.Context) {
	svc := services.ReportService{RequestID: middleware.GetRequestID(c)}

	pdf, filename, err := svc.GenerateFinancingReport(middleware.GetSubjectID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
