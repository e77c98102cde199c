package routes

import (
	"yelpcamp/internal/api/handlers"
	"yelpcamp/internal/api/middleware"
	"yelpcamp/internal/config"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/service"
	"yelpcamp/internal/validation"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(store repository.Store, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()
	router.SetHTMLTemplate(views.MustLoad())

	// Add middleware. ErrorResponder wraps Recovery so panics are answered too.
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorResponder())
	router.Use(middleware.Recovery())

	// Initialize validator
	validator := validation.New()

	// Initialize services
	relations := service.NewRelationshipManager(store)
	campgroundService := service.NewCampgroundService(store, relations, validator)
	reviewService := service.NewReviewService(relations, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	campgroundHandler := handlers.NewCampgroundHandler(campgroundService)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/", handlers.Home)

	campgrounds := router.Group("/campgrounds")
	{
		campgrounds.GET("", handlers.Wrap(campgroundHandler.Index))
		campgrounds.GET("/new", handlers.Wrap(campgroundHandler.New))
		campgrounds.POST("", handlers.Wrap(campgroundHandler.Create))
		campgrounds.GET("/:id", handlers.Wrap(campgroundHandler.Show))
		campgrounds.GET("/:id/edit", handlers.Wrap(campgroundHandler.Edit))
		campgrounds.PUT("/:id", handlers.Wrap(campgroundHandler.Update))
		campgrounds.DELETE("/:id", handlers.Wrap(campgroundHandler.Delete))
		campgrounds.POST("/:id/reviews", handlers.Wrap(reviewHandler.Create))
	}

	router.NoRoute(middleware.NoRoute)

	return router
}
