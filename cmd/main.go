package main

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	_ "github.com/lmontay/pizzeria-backoffice/docs" // Import generated docs
	"github.com/lmontay/pizzeria-backoffice/internal/config"
	"github.com/lmontay/pizzeria-backoffice/internal/controllers"
	"github.com/lmontay/pizzeria-backoffice/internal/middleware"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
	"github.com/lmontay/pizzeria-backoffice/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
)

var (
	configuration *config.Config

	catalogService services.CatalogService
	accountService services.AccountService
	orderService   services.OrderService
	reviewService  services.ReviewService
	filterService  services.FilterService
	dataStore      *store.Store

	authController    *controllers.AuthController
	catalogController controllers.CatalogController
	orderController   *controllers.OrderController
	reviewController  *controllers.ReviewController
	filterController  *controllers.FilterController
	statsController   *controllers.StatsController
	backupController  *controllers.BackupController
)

// @title Pizzeria Back-Office API
// @version 1.0
// @description Customer accounts, pizza catalog, order lifecycle and statistics for a pizzeria back office
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Build the domain: every registry is an explicit object owned here,
	// not package-level state.
	setupDomain()

	// Restore a previous state when the data file exists
	loadDataFile()

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDomain wires the services and controllers together
func setupDomain() {
	catalogService = services.NewCatalogService()
	accountService = services.NewAccountService()
	orderService = services.NewOrderService(accountService)
	reviewService = services.NewReviewService(accountService)
	filterService = services.NewFilterService(catalogService)
	dataStore = store.New(catalogService, accountService, orderService)

	authController = controllers.NewAuthController(accountService, configuration.JWTSecret, configuration.PizzaioloPassword)
	catalogController = controllers.NewCatalogController(catalogService)
	orderController = controllers.NewOrderController(orderService, catalogService, accountService)
	reviewController = controllers.NewReviewController(reviewService, catalogService)
	filterController = controllers.NewFilterController(filterService)
	statsController = controllers.NewStatsController(orderService, catalogService)
	backupController = controllers.NewBackupController(dataStore, configuration.DataFile)
}

// loadDataFile restores the previous domain state at boot. A missing file
// only means a first run.
func loadDataFile() {
	if err := dataStore.Load(configuration.DataFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warnf("No data file at %s, starting with an empty domain", configuration.DataFile)
			return
		}
		checkPanicErr(err)
	}
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.RequestID())

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.POST("/register", authController.Register)
			publicApi.POST("/login", authController.Login)
			publicApi.POST("/pizzaiolo-login", authController.PizzaioloLogin)

			publicApi.GET("/pizzas", catalogController.GetPizzas)
			publicApi.GET("/pizzas/:name", catalogController.GetPizzaByName)
			publicApi.GET("/ingredients", catalogController.GetIngredients)

			publicApi.GET("/pizzas/:name/reviews", reviewController.List)
			publicApi.GET("/pizzas/:name/score", reviewController.AverageScore)

			publicApi.POST("/filter", filterController.Apply)
			publicApi.GET("/filter", filterController.Matches)
			publicApi.DELETE("/filter", filterController.Clear)
		}

		// Protected routes (requires a bearer token from a login)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.SessionAuth([]byte(configuration.JWTSecret)))
		{
			protectedApi.POST("/logout", authController.Logout)

			protectedApi.POST("/orders", orderController.Begin)
			protectedApi.GET("/orders", orderController.MyOrders)
			protectedApi.POST("/orders/:id/pizzas", orderController.AddPizza)
			protectedApi.POST("/orders/:id/validate", orderController.Validate)
			protectedApi.DELETE("/orders/:id", orderController.Cancel)

			protectedApi.POST("/pizzas/:name/reviews", reviewController.Submit)

			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("pizzaiolo"))
			{
				adminApi.POST("/ingredients", catalogController.CreateIngredient)
				adminApi.PUT("/ingredients/:name/price", catalogController.SetIngredientPrice)
				adminApi.POST("/forbidden", catalogController.ToggleForbidden)
				adminApi.POST("/pizzas", catalogController.CreatePizza)
				adminApi.POST("/pizzas/:name/ingredients", catalogController.AddIngredient)
				adminApi.DELETE("/pizzas/:name/ingredients/:ingredient", catalogController.RemoveIngredient)
				adminApi.PUT("/pizzas/:name/price", catalogController.SetPrice)
				adminApi.PUT("/pizzas/:name/photo", catalogController.SetPhoto)
				adminApi.GET("/pizzas/:name/verify", catalogController.VerifyIngredients)

				adminApi.GET("/orders", orderController.LedgerOrders)
				adminApi.POST("/orders/fulfill", orderController.FulfillValidated)
				adminApi.POST("/orders/:id/recompute", orderController.RecomputeTotal)

				adminApi.GET("/stats/benefit", statsController.TotalBenefit)
				adminApi.GET("/stats/benefit-by-pizza", statsController.BenefitByPizza)
				adminApi.GET("/stats/benefit-by-client", statsController.BenefitByClient)
				adminApi.GET("/stats/pizza-count-by-client", statsController.PizzaCountByClient)
				adminApi.GET("/stats/pizzas/:name/count", statsController.PizzaOrderCount)
				adminApi.GET("/stats/ranking", statsController.Ranking)

				adminApi.POST("/backup/save", backupController.Save)
				adminApi.POST("/backup/load", backupController.Load)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzeria-backoffice",
	})
}
