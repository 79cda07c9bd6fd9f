package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

// CreateRestaurantPizzaRequest is the body of POST /restaurant_pizzas
type CreateRestaurantPizzaRequest struct {
	Price        int  `json:"price" binding:"min=1,max=30" example:"5"`
	PizzaID      uint `json:"pizza_id" example:"1"`
	RestaurantID uint `json:"restaurant_id" example:"3"`
}

var requiredRestaurantPizzaFields = []string{"price", "pizza_id", "restaurant_id"}

var (
	errMissingFields = errors.New("missing required fields")
	errInvalidFields = errors.New("invalid fields")
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizzas
type RestaurantPizzaController interface {
	// CreateRestaurantPizza adds a pizza to a restaurant's menu
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	renderer
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService, indent bool) RestaurantPizzaController {
	UseJSONFieldNames()
	return &restaurantPizzaController{renderer: renderer{indent: indent}, service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Add a pizza to a restaurant's menu at a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body CreateRestaurantPizzaRequest true "Restaurant pizza"
// @Success 201 {object} models.RestaurantPizzaView
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var fields map[string]json.RawMessage
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		message := bindingErrorMessage(err)
		log.WithError(err).WithField("reason", message).Debug("Rejected restaurant pizza")
		c.json(ctx, http.StatusBadRequest, models.NewValidationErrorResponse(message))
		return
	}

	req, err := parseCreateRestaurantPizza(fields)
	if err != nil {
		message := models.MsgValidationErrors
		switch {
		case errors.Is(err, errMissingFields):
			message = models.MsgMissingRequiredFields
		case errors.Is(err, services.ErrPizzaOrRestaurantNotFound):
			message = models.MsgPizzaOrRestaurantMissing
		}
		log.WithError(err).WithField("reason", message).Debug("Rejected restaurant pizza")
		c.json(ctx, http.StatusBadRequest, models.NewValidationErrorResponse(message))
		return
	}

	created, err := c.service.CreateRestaurantPizza(ctx.Request.Context(), services.CreateRestaurantPizzaInput{
		Price:        req.Price,
		PizzaID:      req.PizzaID,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPizzaOrRestaurantNotFound):
			c.json(ctx, http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgPizzaOrRestaurantMissing))
		case errors.Is(err, services.ErrInvalidPrice):
			c.json(ctx, http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgValidationErrors))
		default:
			log.WithError(err).Error("Failed to create restaurant pizza")
			c.json(ctx, http.StatusBadRequest, models.NewValidationErrorResponse(models.MsgValidationErrors))
		}
		return
	}

	log.WithFields(logrus.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
	}).Info("Restaurant pizza created")
	c.json(ctx, http.StatusCreated, models.NewRestaurantPizzaView(created))
}

// bindingErrorMessage maps a body that is not a JSON object to the message
// the API reports. An empty body has no fields at all.
func bindingErrorMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return models.MsgMissingRequiredFields
	}
	return models.MsgValidationErrors
}

// parseCreateRestaurantPizza checks presence of every field first, then the
// price, then the references. Ids that cannot name a row are reported as not found.
func parseCreateRestaurantPizza(fields map[string]json.RawMessage) (CreateRestaurantPizzaRequest, error) {
	var req CreateRestaurantPizzaRequest
	for _, name := range requiredRestaurantPizzaFields {
		raw, ok := fields[name]
		if !ok || isNull(raw) {
			return req, fmt.Errorf("%w: %s", errMissingFields, name)
		}
	}

	if err := json.Unmarshal(fields["price"], &req.Price); err != nil {
		return req, fmt.Errorf("%w: price: %v", errInvalidFields, err)
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidFields, err)
	}

	pizzaID, pizzaOK := referenceID(fields["pizza_id"])
	restaurantID, restaurantOK := referenceID(fields["restaurant_id"])
	if !pizzaOK || !restaurantOK {
		return req, services.ErrPizzaOrRestaurantNotFound
	}
	req.PizzaID, req.RestaurantID = pizzaID, restaurantID
	return req, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// referenceID reads a positive integer id
func referenceID(raw json.RawMessage) (uint, bool) {
	var id uint32
	if err := json.Unmarshal(raw, &id); err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
