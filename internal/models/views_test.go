package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantDetailViewOmitsNestedAssociations(t *testing.T) {
	pizza := Pizza{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
	restaurant := Restaurant{
		ID: 1, Name: "Karen's Pizza Shack", Address: "address1",
		RestaurantPizzas: []RestaurantPizza{{ID: 5, Price: 10, PizzaID: 2, RestaurantID: 1, Pizza: &pizza}},
	}
	pizza.RestaurantPizzas = restaurant.RestaurantPizzas

	out, err := json.Marshal(NewRestaurantDetailView(restaurant))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 1, "name": "Karen's Pizza Shack", "address": "address1",
		"restaurant_pizzas": [
			{"id": 5, "price": 10, "pizza_id": 2, "restaurant_id": 1,
			 "pizza": {"id": 2, "name": "Geri", "ingredients": "Dough, Tomato Sauce, Cheese, Pepperoni"}}
		]
	}`, string(out))
}

func TestRestaurantDetailViewEmptyMenu(t *testing.T) {
	out, err := json.Marshal(NewRestaurantDetailView(Restaurant{ID: 3, Name: "Kiki's Pizza", Address: "address3"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id": 3, "name": "Kiki's Pizza", "address": "address3", "restaurant_pizzas": []}`, string(out))
}

func TestEntitiesHideAssociationLists(t *testing.T) {
	out, err := json.Marshal(Restaurant{ID: 1, Name: "a", Address: "b", RestaurantPizzas: []RestaurantPizza{{ID: 1}}})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "restaurant_pizzas")
}

func TestValidPrice(t *testing.T) {
	for price, expected := range map[int]bool{0: false, 1: true, 15: true, 30: true, 31: false, -5: false} {
		assert.Equal(t, expected, ValidPrice(price), "price %d", price)
	}
}
