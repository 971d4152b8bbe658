package routes

import (
	"net/http"
	"time"

	"servehub/handlers"
	"servehub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// HandlerBundle groups the HTTP handlers wired in main.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Review   *handlers.ReviewHandler
	Provider *handlers.ProviderHandler
}

// RegisterRoutes attaches all endpoint groups to the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	registerValidators()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerBookingRoutes(r, hb)
	registerReviewRoutes(r, hb)
	registerProviderRoutes(r, hb)
}

func registerBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Slot queries are public: customers browse before signing in.
		api.GET("/slots/:providerId", hb.Booking.GetAvailableSlotsHandler)
		api.GET("/slots/:providerId/taken", hb.Booking.GetTakenSlotsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Booking.CreateBookingHandler)
		protected.GET("/customer/:userId", hb.Booking.ListCustomerBookingsHandler)
		protected.GET("/provider/:providerId", hb.Booking.ListProviderBookingsHandler)
		protected.PATCH("/:bookingId/status", hb.Booking.UpdateBookingStatusHandler)
	}
}

func registerReviewRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("/provider/:providerId", hb.Review.ListProviderReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("", hb.Review.SubmitReviewHandler)
	}
}

func registerProviderRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("/:id/availability", hb.Provider.GetAvailabilityHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("provider"))
		protected.PUT("/:id/availability", hb.Provider.UpdateAvailabilityHandler)
	}
}

// registerValidators adds custom binding validations used by request structs.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// datekey: the opaque "YYYY-MM-DD" date key used across the API.
		_ = v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}
