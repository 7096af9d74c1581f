package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "github.com/Gerilya-By-BSI/huniya-backend/internal/config"
	h "github.com/Gerilya-By-BSI/huniya-backend/internal/http/handlers"
	"github.com/Gerilya-By-BSI/huniya-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/admin/login", h.AdminLogin)

		houses := api.Group("/houses")
		houses.GET("", h.GetHouses)
		houses.GET("/:id", h.GetHouseByID)

		bookmarks := api.Group("/bookmarks")
		bookmarks.Use(middleware.RequireAuth(secret), middleware.RequireRole(middleware.RoleUser))
		bookmarks.POST("", h.CreateBookmark)
		bookmarks.GET("", h.GetBookmarks)
		bookmarks.GET("/status", h.GetTrackingStatuses)
		bookmarks.PUT("/tracking-status", h.UpdateOwnTrackingStatus)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(secret), middleware.RequireRole(middleware.RoleAdmin))
		admin.GET("/detail", h.GetAdminDetail)
		admin.GET("/financing-users", h.GetFinancingUsers)
		admin.GET("/financing-users/:userId/house/:houseId", h.GetFinancingUserDetail)
		admin.PUT("/update-tracking-status", h.UpdateTrackingStatus)
		admin.GET("/houses", h.GetAdminHouses)
		admin.GET("/houses/search", h.SearchAdminHouses)
		admin.GET("/house-detail/:id", h.GetAdminHouseDetail)
		admin.GET("/financing-report", h.GetFinancingReportPDF)
	}

	return r
}
