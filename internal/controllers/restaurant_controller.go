package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant and its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its menu
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	renderer
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService, indent bool) RestaurantController {
	return &restaurantController{renderer: renderer{indent: indent}, service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants with their id, name and address
// @Tags restaurants
// @Accept json
// @Produce json
// @Success 200 {array} models.RestaurantView
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants(ctx.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to retrieve restaurants")
		c.json(ctx, http.StatusInternalServerError, models.NewErrorResponse(models.MsgRestaurantsFetchFailed))
		return
	}

	views := make([]models.RestaurantView, 0, len(restaurants))
	for _, restaurant := range restaurants {
		views = append(views, models.NewRestaurantView(restaurant))
	}
	c.json(ctx, http.StatusOK, views)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it serves
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailView
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		c.json(ctx, http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			c.json(ctx, http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
			return
		}
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		c.json(ctx, http.StatusInternalServerError, models.NewErrorResponse(models.MsgRestaurantFetchFailed))
		return
	}
	c.json(ctx, http.StatusOK, models.NewRestaurantDetailView(restaurant))
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant by its ID, together with its restaurant pizzas
// @Tags restaurants
// @Accept json
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		c.json(ctx, http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	if err := c.service.DeleteRestaurant(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRestaurantNotFound) {
			c.json(ctx, http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
			return
		}
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		c.json(ctx, http.StatusInternalServerError, models.NewErrorResponse(models.MsgRestaurantDeleteFailed))
		return
	}

	log.WithField("restaurant_id", id).Info("Restaurant deleted")
	ctx.Status(http.StatusNoContent)
}
