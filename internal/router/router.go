package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hizmetpinari/internal/config"
	"hizmetpinari/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
	offerHandler *handler.OfferHandler,
	reviewHandler *handler.ReviewHandler,
	adminHandler *handler.AdminHandler,
	catalogHandler *handler.CatalogHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Catalog (public read)
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/services", catalogHandler.ListServices)
	api.GET("/districts", catalogHandler.ListDistricts)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", authHandler.Me)

	// Job routes
	secured.POST("/jobs", jobHandler.CreateJob)
	secured.POST("/jobs/privileged-create", jobHandler.CreateJobPrivileged)
	secured.GET("/jobs", jobHandler.ListOpenJobs)
	secured.GET("/jobs/mine", jobHandler.ListMyJobs)
	secured.GET("/jobs/:id", jobHandler.GetJob)
	secured.PATCH("/jobs/:id/complete", jobHandler.CompleteJob)
	secured.PATCH("/jobs/:id/cancel", jobHandler.CancelJob)

	// Offer routes
	secured.POST("/jobs/:id/offers", offerHandler.SubmitOffer)
	secured.GET("/jobs/:id/offers", offerHandler.ListOffers)
	secured.POST("/offers/:id/accept", offerHandler.AcceptOffer)
	secured.POST("/offers/:id/reject", offerHandler.RejectOffer)
	secured.DELETE("/offers/:id", offerHandler.WithdrawOffer)

	// Review routes
	secured.POST("/jobs/:id/reviews", reviewHandler.CreateReview)
	secured.GET("/providers/:id/reviews", reviewHandler.ListProviderReviews)

	// Admin user management
	secured.GET("/admin/users", adminHandler.ListUsers)
	secured.POST("/admin/users", adminHandler.CreateAdmin)
	secured.GET("/admin/users/:id", adminHandler.GetUser)
	secured.PATCH("/admin/users/:id/active", adminHandler.SetUserActive)
	secured.DELETE("/admin/users/:id", adminHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
