package routes

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName is reported by the health check
const ServiceName = "pizza-restaurants-api"

// Options configures the router
type Options struct {
	// JSONIndent renders responses as indented JSON
	JSONIndent bool
	// CORSAllowedOrigins lists browser origins allowed to call the API
	CORSAllowedOrigins []string
	// Logger receives one entry per request
	Logger *logrus.Logger
}

// SetupRouter wires services, controllers and middleware on a new gin engine
func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.CORS(opts.CORSAllowedOrigins),
	)

	restaurantController := controllers.NewRestaurantController(services.NewRestaurantService(db), opts.JSONIndent)
	pizzaController := controllers.NewPizzaController(services.NewPizzaService(db), opts.JSONIndent)
	restaurantPizzaController := controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db), opts.JSONIndent)

	RegisterRoutes(router, db, opts.JSONIndent, restaurantController, pizzaController, restaurantPizzaController)
	return router
}

// RegisterRoutes defines the routes for the Gin router
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	jsonIndent bool,
	restaurantController controllers.RestaurantController,
	pizzaController controllers.PizzaController,
	restaurantPizzaController controllers.RestaurantPizzaController,
) {
	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler(db, jsonIndent))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/restaurants", restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurantController.DeleteRestaurant)

	router.GET("/pizzas", pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Pizza challenge API</h1>"))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(db *gorm.DB, indent bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code, dbStatus := "healthy", http.StatusOK, "up"
		if err := database.Ping(db); err != nil {
			status, code, dbStatus = "unhealthy", http.StatusServiceUnavailable, "down"
		}
		body := gin.H{
			"status":    status,
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"service":   ServiceName,
		}
		if indent {
			c.IndentedJSON(code, body)
			return
		}
		c.JSON(code, body)
	}
}
