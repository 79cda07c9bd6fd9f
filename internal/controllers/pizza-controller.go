package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
}

type pizzaController struct {
	renderer
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService, indent bool) PizzaController {
	return &pizzaController{renderer: renderer{indent: indent}, service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get a list of all pizzas, without their restaurant associations
// @Tags pizzas
// @Accept json
// @Produce json
// @Success 200 {array} models.PizzaView
// @Failure 500 {object} models.ErrorResponse
// @Router /pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas(ctx.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve pizzas")
		c.json(ctx, http.StatusInternalServerError, models.NewErrorResponse(models.MsgPizzasFetchFailed))
		return
	}

	views := make([]models.PizzaView, 0, len(pizzas))
	for _, pizza := range pizzas {
		views = append(views, models.NewPizzaView(pizza))
	}
	log.WithField("count", len(views)).Debug("Listed pizzas")
	c.json(ctx, http.StatusOK, views)
}

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns the package logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
