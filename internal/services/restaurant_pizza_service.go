package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"gorm.io/gorm"
)

// CreateRestaurantPizzaInput carries the fields of a new menu entry
type CreateRestaurantPizzaInput struct {
	Price        int
	PizzaID      uint
	RestaurantID uint
}

// RestaurantPizzaService manages the restaurant/pizza association
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates and stores a menu entry, returning it
	// with Pizza and Restaurant loaded
	CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db *gorm.DB
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, input CreateRestaurantPizzaInput) (models.RestaurantPizza, error) {
	if !models.ValidPrice(input.Price) {
		return models.RestaurantPizza{}, ErrInvalidPrice
	}

	db := s.db.WithContext(ctx)

	var pizza models.Pizza
	if err := db.First(&pizza, input.PizzaID).Error; err != nil {
		return models.RestaurantPizza{}, lookupError("pizza", input.PizzaID, err)
	}
	var restaurant models.Restaurant
	if err := db.First(&restaurant, input.RestaurantID).Error; err != nil {
		return models.RestaurantPizza{}, lookupError("restaurant", input.RestaurantID, err)
	}

	restaurantPizza := models.RestaurantPizza{
		Price:        input.Price,
		PizzaID:      pizza.ID,
		RestaurantID: restaurant.ID,
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Pizza", "Restaurant").Create(&restaurantPizza).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.RestaurantPizza{}, ErrPizzaOrRestaurantNotFound
		}
		return models.RestaurantPizza{}, fmt.Errorf("create restaurant pizza: %w", err)
	}

	restaurantPizza.Pizza = &pizza
	restaurantPizza.Restaurant = &restaurant
	return restaurantPizza, nil
}

func lookupError(kind string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPizzaOrRestaurantNotFound
	}
	return fmt.Errorf("get %s %d: %w", kind, id, err)
}
