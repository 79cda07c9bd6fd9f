package database

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedData is the initial content of an empty database
type SeedData struct {
	Restaurants []models.Restaurant
	Pizzas      []models.Pizza
	// Menu pairs indexes into Restaurants and Pizzas with a price
	Menu []SeedMenuEntry
}

// SeedMenuEntry references Restaurants and Pizzas by position
type SeedMenuEntry struct {
	Restaurant int
	Pizza      int
	Price      int
}

// DefaultSeedData returns the restaurants and pizzas the service starts with
func DefaultSeedData() SeedData {
	return SeedData{
		Restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		},
		Pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		},
		Menu: []SeedMenuEntry{
			{Restaurant: 0, Pizza: 0, Price: 1},
			{Restaurant: 1, Pizza: 1, Price: 4},
			{Restaurant: 2, Pizza: 2, Price: 5},
			{Restaurant: 0, Pizza: 2, Price: 12},
		},
	}
}

// SeedIfEmpty seeds the database only when no restaurant exists yet
func SeedIfEmpty(db *gorm.DB, data SeedData) (bool, error) {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count restaurants: %w", err)
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	log.Info("Database is empty, seeding initial data")
	return true, Seed(db, data)
}

// Seed inserts data in a single transaction
func Seed(db *gorm.DB, data SeedData) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		restaurants := append([]models.Restaurant(nil), data.Restaurants...)
		pizzas := append([]models.Pizza(nil), data.Pizzas...)

		if len(restaurants) > 0 {
			if err := tx.Create(&restaurants).Error; err != nil {
				return fmt.Errorf("create restaurants: %w", err)
			}
		}
		if len(pizzas) > 0 {
			if err := tx.Create(&pizzas).Error; err != nil {
				return fmt.Errorf("create pizzas: %w", err)
			}
		}

		for _, entry := range data.Menu {
			if entry.Restaurant < 0 || entry.Restaurant >= len(restaurants) ||
				entry.Pizza < 0 || entry.Pizza >= len(pizzas) {
				return fmt.Errorf("seed menu entry %+v references a missing row", entry)
			}
			rp := models.RestaurantPizza{
				Price:        entry.Price,
				RestaurantID: restaurants[entry.Restaurant].ID,
				PizzaID:      pizzas[entry.Pizza].ID,
			}
			if err := tx.Create(&rp).Error; err != nil {
				return fmt.Errorf("create restaurant pizza: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"restaurants": len(data.Restaurants),
		"pizzas":      len(data.Pizzas),
		"menu":        len(data.Menu),
	}).Info("Database seeded successfully")
	return nil
}

// Reset deletes every row, association rows first
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("reset %T: %w", model, err)
			}
		}
		return nil
	})
}
