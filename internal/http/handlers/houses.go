package handlers

import (
	"net/http"

	"github.com/Gerilya-By-BSI/huniya-backend/internal/http/middleware"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/repositories"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func houseFilterFromQuery(c *gin.Context) repositories.HouseFilter {
	return repositories.HouseFilter{
		Location:        c.Query("location"),
		MinPrice:        queryInt64Ptr(c, "min_price"),
		MaxPrice:        queryInt64Ptr(c, "max_price"),
		RoomCount:       queryIntPtr(c, "room_count"),
		BathroomCount:   queryIntPtr(c, "bathroom_count"),
		ParkingCount:    queryIntPtr(c, "parking_count"),
		MinLandArea:     queryFloatPtr(c, "min_land_area"),
		MaxLandArea:     queryFloatPtr(c, "max_land_area"),
		MinBuildingArea: queryFloatPtr(c, "min_building_area"),
		MaxBuildingArea: queryFloatPtr(c, "max_building_area"),
		Search:          c.Query("search"),
	}
}

// GET /api/houses
func GetHouses(c *gin.Context) {
	page, limit := pageParams(c)
	svc := services.HouseService{RequestID: middleware.GetRequestID(c)}

	env, err := svc.FindHouses(houseFilterFromQuery(c), page, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

// GET /api/houses/:id
func GetHouseByID(c *gin.Context) {
	id, ok := paramInt64(c, "id")
	if !ok {
		return
	}

	svc := services.HouseService{RequestID: middleware.GetRequestID(c)}
	house, err := svc.GetHouse(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": house})
}
