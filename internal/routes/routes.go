package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/sportspot/sportspot-api/internal/audit"
	"github.com/sportspot/sportspot-api/internal/availability"
	"github.com/sportspot/sportspot-api/internal/config"
	"github.com/sportspot/sportspot-api/internal/handlers"
	"github.com/sportspot/sportspot-api/internal/images"
	infraRepo "github.com/sportspot/sportspot-api/internal/infra/repository"
	"github.com/sportspot/sportspot-api/internal/middleware"
	"github.com/sportspot/sportspot-api/internal/payment"
	"github.com/sportspot/sportspot-api/internal/realtime"
	ucBooking "github.com/sportspot/sportspot-api/internal/usecase/booking"
	ucSlots "github.com/sportspot/sportspot-api/internal/usecase/slots"
	ucVenue "github.com/sportspot/sportspot-api/internal/usecase/venue"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	feedPublisher := realtime.NewPublisher(rdb)
	feedHub := realtime.NewHub(rdb)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	catalog := ucVenue.NewCatalog(db, rdb)

	var uploader *images.S3Uploader
	if cfg.S3AccessKey != "" {
		uploader = images.NewS3Uploader(cfg)
	}

	var gateway payment.Gateway
	if cfg.MPAccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Printf("payment gateway disabled: %v", err)
		} else {
			gateway = mp
		}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	provisioner := ucSlots.NewProvisioner(scheduleRepo)
	generator := ucSlots.NewGenerator(scheduleRepo, provisioner)

	reconciler := availability.New(bookingRepo, feedHub)

	createBookingUC := ucBooking.NewCreator(bookingRepo, feedPublisher, auditDispatcher)
	cancelBookingUC := ucBooking.NewCanceller(bookingRepo, feedPublisher, auditDispatcher)
	listBookingsUC := ucBooking.NewLister(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	venueHandler := handlers.NewVenueHandler(catalog)
	slotsHandler := handlers.NewSlotsHandler(generator)
	availabilityHandler := handlers.NewAvailabilityHandler(reconciler)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, cancelBookingUC, listBookingsUC)
	checkoutHandler := handlers.NewCheckoutHandler(bookingRepo, catalog, gateway)

	adminVenueHandler := handlers.NewAdminVenueHandler(db, catalog, uploader)
	adminSportHandler := handlers.NewAdminSportHandler(db, catalog)
	adminScheduleHandler := handlers.NewAdminScheduleHandler(db)
	adminBookingHandler := handlers.NewAdminBookingHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/venues", venueHandler.List)
		api.GET("/venues/:id", venueHandler.Get)
		api.GET("/venues/:id/sports", venueHandler.SportsForVenue)
		api.GET("/sports", venueHandler.ListSports)

		api.GET("/slots", slotsHandler.List)
		api.GET("/slots/preview", slotsHandler.Preview)
		api.GET("/slots/:ref/availability", availabilityHandler.Get)
		api.GET("/slots/:ref/availability/stream", availabilityHandler.Stream)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SIGNED-IN USERS
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/bookings", bookingHandler.Create)
			secured.POST("/bookings/:id/checkout", checkoutHandler.Create)

			secured.GET("/me/bookings", bookingHandler.ListMine)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.POST("/venues", adminVenueHandler.Create)
				admin.PATCH("/venues/:id", adminVenueHandler.Update)
				admin.DELETE("/venues/:id", adminVenueHandler.Delete)
				admin.POST("/venues/:id/image", adminVenueHandler.UploadImage)
				admin.POST("/venues/:id/sports", adminVenueHandler.LinkSport)
				admin.DELETE("/venues/:id/sports/:sportId", adminVenueHandler.UnlinkSport)

				admin.GET("/venues/:id/hours", adminScheduleHandler.ListHours)
				admin.PUT("/venues/:id/hours", adminScheduleHandler.PutHours)
				admin.GET("/venues/:id/pricing", adminScheduleHandler.ListPricing)
				admin.PUT("/venues/:id/pricing", adminScheduleHandler.PutPricing)

				admin.POST("/sports", adminSportHandler.Create)
				admin.PATCH("/sports/:id", adminSportHandler.Update)
				admin.DELETE("/sports/:id", adminSportHandler.Delete)

				admin.GET("/bookings", adminBookingHandler.List)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
