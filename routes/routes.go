package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tyco-hotel-backend/controllers"
	"tyco-hotel-backend/middleware"
	"tyco-hotel-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the public site endpoints and the admin console behind
// the auth middleware.
func SetupRouter(
	authSvc *services.AuthService,
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	rsc *controllers.ReservationController,
	mc *controllers.MediaController,
	sc *controllers.SettingsController,
	stc *controllers.StatsController,
	uploadsDir string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", uploadsDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := middleware.RequireAdmin(authSvc)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ac.Login)
		}

		rooms := api.Group("/rooms")
		{
			// reads are public, the booking page queries available rooms
			rooms.GET("", rc.GetRooms)
			rooms.GET("/:id", rc.GetRoom)

			rooms.POST("", admin, rc.CreateRoom)
			rooms.PATCH("/:id", admin, rc.UpdateRoom)
			rooms.PUT("/:id", admin, rc.UpdateRoom)
			rooms.DELETE("/:id", admin, rc.DeleteRoom)
			rooms.POST("/:id/images", admin, mc.UploadRoomImages)
		}

		reservations := api.Group("/reservations")
		{
			// the public booking form creates pending reservations
			reservations.POST("", rsc.CreateReservation)

			reservations.GET("", admin, rsc.GetReservations)
			reservations.GET("/:id", admin, rsc.GetReservation)
			reservations.PUT("/:id", admin, rsc.UpdateReservation)
			reservations.PATCH("/:id/status", admin, rsc.UpdateReservationStatus)
			reservations.DELETE("/:id", admin, rsc.DeleteReservation)
		}

		media := api.Group("/media")
		{
			media.GET("/gallery", mc.GetGallery)
			media.POST("/base64", admin, mc.UploadBase64)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
			settings.PUT("/hotel", admin, sc.UpdateHotelSettings)
		}

		api.GET("/stats", admin, stc.GetDashboard)
	}

	return r
}
