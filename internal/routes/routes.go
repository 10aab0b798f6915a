package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"nursing-ward-server/internal/config"
	"nursing-ward-server/internal/handlers"
	"nursing-ward-server/internal/middleware"
	"nursing-ward-server/internal/services"
)

// NewRouter builds the gin engine with logging, recovery and CORS wired in.
func NewRouter(cfg *config.Config, db *gorm.DB, logger zerolog.Logger) (*gin.Engine, error) {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), middleware.Recovery())

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	if err := SetupRoutes(router, db, cfg); err != nil {
		return nil, err
	}
	return router, nil
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) error {
	// Initialize services and handlers
	patientService := services.NewPatientService(db, cfg.DeletePolicy)
	scheduleService := services.NewScheduleService(db).WithLocation(cfg.Location)
	vitalsService := services.NewVitalsService(db)
	roster, err := services.NewRosterProvider(cfg.RosterSource, db)
	if err != nil {
		return err
	}

	patientHandler := handlers.NewPatientHandler(patientService, scheduleService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	vitalsHandler := handlers.NewVitalsHandler(vitalsService)
	shiftHandler := handlers.NewShiftHandler(roster)
	healthHandler := handlers.NewHealthHandler(db)

	api := router.Group("/api/nursing")
	{
		patientRoutes := api.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.CreatePatient)
			patientRoutes.GET("", patientHandler.GetPatients)
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.PUT("/:id", patientHandler.UpdatePatient)
			patientRoutes.DELETE("/:id", patientHandler.DeletePatient)
			patientRoutes.GET("/:id/schedules", patientHandler.GetPatientSchedules)
		}

		scheduleRoutes := api.Group("/schedules")
		{
			scheduleRoutes.POST("", scheduleHandler.CreateSchedule)
			scheduleRoutes.GET("", scheduleHandler.GetSchedules)
			// Status is the only field a session ever changes
			scheduleRoutes.PATCH("/:id", scheduleHandler.UpdateScheduleStatus)
		}

		shiftRoutes := api.Group("/shifts")
		{
			shiftRoutes.GET("", shiftHandler.GetShifts)
			shiftRoutes.GET("/grouped", shiftHandler.GetGroupedShifts)
		}

		// Vitals are append-only: no PUT or DELETE
		vitalsRoutes := api.Group("/vitals")
		{
			vitalsRoutes.POST("", vitalsHandler.RecordVitals)
			vitalsRoutes.GET("/:patientId", vitalsHandler.GetVitals)
			vitalsRoutes.GET("/:patientId/trend", vitalsHandler.GetVitalsTrend)
		}
	}

	router.GET("/health", healthHandler.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "message": "An error occurred", "error": "route not found"})
	})
	return nil
}
