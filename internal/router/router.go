package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Login(c *ginext.Context)
	RequestVerification(c *ginext.Context)
	VerifyCode(c *ginext.Context)
	ListVenues(c *ginext.Context)
	AdminListVenues(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	UpdateVenue(c *ginext.Context)
	CheckAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	Calendar(c *ginext.Context)
	Reports(c *ginext.Context)
}

func InitRouter(mode string, allowedOrigins []string, h Handler, authMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	{
		// Public
		api.POST("/login", h.Login)
		api.POST("/auth/verify/request", h.RequestVerification)
		api.POST("/auth/verify", h.VerifyCode)
		api.GET("/venues", h.ListVenues)
		api.POST("/venues/availability", h.CheckAvailability)
		api.POST("/bookings", h.CreateBooking)

		// Admin
		admin := api.Group("/", authMW)
		{
			admin.GET("/bookings", h.ListBookings)
			admin.GET("/bookings/:id", h.GetBooking)
			admin.PUT("/bookings/:id", h.UpdateBooking)
			admin.PUT("/bookings/:id/status", h.UpdateBookingStatus)
			admin.GET("/venues/all", h.AdminListVenues)
			admin.POST("/venues", h.CreateVenue)
			admin.PUT("/venues/:id", h.UpdateVenue)
			admin.GET("/calendar", h.Calendar)
			admin.GET("/reports", h.Reports)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
