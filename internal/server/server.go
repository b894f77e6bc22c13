package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/config"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/handler"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/middleware"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client
	nats   *nats.Conn
	wsHub  *handler.WSHub
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, natsConn *nats.Conn) *Server {
	return &Server{
		config: cfg,
		db:     db,
		redis:  redisClient,
		nats:   natsConn,
	}
}

// Setup initializes routes and handlers
func (s *Server) Setup() {
	// Initialize WebSocket hub first
	s.wsHub = handler.NewWSHub(s.nats)
	wsHandler := handler.NewWSHandler(s.wsHub)

	// Initialize services
	events := service.NewEventPublisher(s.nats)
	authService := service.NewAuthService(s.db)
	vehicleService := service.NewVehicleService(s.db)
	driverService := service.NewDriverService(s.db)
	fuelService := service.NewFuelService(s.db, events)
	maintenanceService := service.NewMaintenanceService(s.db, events)
	fleetService := service.NewFleetService(s.db)
	reportService := service.NewReportService(s.db)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, s.redis, s.config)
	vehicleHandler := handler.NewVehicleHandler(vehicleService)
	driverHandler := handler.NewDriverHandler(driverService)
	fuelHandler := handler.NewFuelHandler(fuelService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	fleetHandler := handler.NewFleetHandler(fleetService)
	reportHandler := handler.NewReportHandler(reportService)

	// Start WebSocket hub in background
	go s.wsHub.Run()
	log.Println("[Server] WebSocket hub started")

	// Setup Gin router
	s.router = gin.Default()

	// CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Rate limiting
	if s.config.RateLimit.Enabled && s.redis != nil {
		limiter := middleware.NewRedisRateLimiter(s.redis)
		group := middleware.NewRateLimitGroup(limiter, s.config.RateLimit.DefaultRule.ToMiddlewareConfig())
		group.SetUserIDExtractor(authHandler.UserIDFromBearer)
		for _, rule := range s.config.RateLimit.SpecificRules {
			group.AddSpecificConfig(rule.Path, rule.ToMiddlewareConfig())
		}
		s.router.Use(group.Middleware())
		log.Println("[Server] Rate limiting enabled")
	}

	// Swagger UI
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	s.router.GET("/", authHandler.OptionalAuthMiddleware(), fleetHandler.Index)
	s.router.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "POST username and password to sign in"})
	})
	s.router.POST("/login", authHandler.Login)
	s.router.GET("/signup", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "POST username, email and password to register"})
	})
	s.router.POST("/signup", authHandler.Signup)

	// WebSocket routes
	s.router.GET("/ws/fleet", wsHandler.HandleFleet)
	s.router.GET("/ws/stats", wsHandler.GetStats)

	// Protected routes
	authed := s.router.Group("/")
	authed.Use(authHandler.AuthMiddleware())
	{
		authed.GET("/logout", authHandler.Logout)
		authed.GET("/me", authHandler.GetMe)

		// Dashboard views
		authed.GET("/dashboard", fleetHandler.Dashboard)
		authed.GET("/vehicles", vehicleHandler.List)
		authed.GET("/vehicle/:id", vehicleHandler.Detail)
		authed.GET("/vehicle-tracking", vehicleHandler.Tracking)
		authed.GET("/maintenance", fleetHandler.Maintenance)
		authed.GET("/driver-performance", fleetHandler.DriverPerformance)
		authed.GET("/fuel-management", fleetHandler.FuelManagement)

		// Vehicle CRUD
		authed.GET("/add-vehicle", vehicleHandler.AddForm)
		authed.POST("/add-vehicle", vehicleHandler.Add)
		authed.GET("/edit-vehicle/:id", vehicleHandler.EditForm)
		authed.POST("/edit-vehicle/:id", vehicleHandler.Edit)

		// Driver CRUD
		authed.GET("/add-driver", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "POST name and license_number to add a driver"})
		})
		authed.POST("/add-driver", driverHandler.Add)
		authed.GET("/edit-driver/:id", driverHandler.EditForm)
		authed.POST("/edit-driver/:id", driverHandler.Edit)

		// Write workflows
		authed.POST("/add-fuel-record", fuelHandler.Add)
		authed.POST("/add-maintenance", maintenanceHandler.Add)
		authed.POST("/complete-maintenance", maintenanceHandler.Complete)

		// JSON APIs
		authed.GET("/api/vehicle-locations", vehicleHandler.Locations)
		authed.GET("/api/maintenance-alerts", maintenanceHandler.Alerts)
		authed.GET("/api/driver-performance/:id", driverHandler.PerformanceHistory)

		// Reports
		authed.GET("/api/reports/fuel/export", reportHandler.ExportFuel)
		authed.GET("/api/reports/maintenance/export", reportHandler.ExportMaintenance)
	}
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	log.Printf("[Server] HTTP server listening on %s", addr)
	return s.router.Run(addr)
}

// GetRouter returns the gin router for testing
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() {
	if s.wsHub != nil {
		s.wsHub.Stop()
		log.Println("[Server] WebSocket hub stopped")
	}
}
