package models

// The view types below are what the API serializes. They never embed a
// parent's association list, so nested objects cannot recurse.

// RestaurantView is the flat representation of a restaurant
type RestaurantView struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PizzaView is the flat representation of a pizza
type PizzaView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// MenuEntryView is a restaurant pizza as listed under its restaurant
type MenuEntryView struct {
	ID           uint      `json:"id"`
	Price        int       `json:"price"`
	PizzaID      uint      `json:"pizza_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Pizza        PizzaView `json:"pizza"`
}

// RestaurantDetailView is a restaurant together with its menu entries
type RestaurantDetailView struct {
	RestaurantView
	RestaurantPizzas []MenuEntryView `json:"restaurant_pizzas"`
}

// RestaurantPizzaView is the created association with both sides expanded
type RestaurantPizzaView struct {
	ID           uint           `json:"id"`
	Price        int            `json:"price"`
	PizzaID      uint           `json:"pizza_id"`
	RestaurantID uint           `json:"restaurant_id"`
	Pizza        PizzaView      `json:"pizza"`
	Restaurant   RestaurantView `json:"restaurant"`
}

func NewRestaurantView(r Restaurant) RestaurantView {
	return RestaurantView{ID: r.ID, Name: r.Name, Address: r.Address}
}

func NewPizzaView(p Pizza) PizzaView {
	return PizzaView{ID: p.ID, Name: p.Name, Ingredients: p.Ingredients}
}

// NewRestaurantDetailView expects RestaurantPizzas and their Pizza to be preloaded
func NewRestaurantDetailView(r Restaurant) RestaurantDetailView {
	entries := make([]MenuEntryView, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		entry := MenuEntryView{
			ID:           rp.ID,
			Price:        rp.Price,
			PizzaID:      rp.PizzaID,
			RestaurantID: rp.RestaurantID,
		}
		if rp.Pizza != nil {
			entry.Pizza = NewPizzaView(*rp.Pizza)
		}
		entries = append(entries, entry)
	}
	return RestaurantDetailView{
		RestaurantView:   NewRestaurantView(r),
		RestaurantPizzas: entries,
	}
}

// NewRestaurantPizzaView expects Pizza and Restaurant to be preloaded
func NewRestaurantPizzaView(rp RestaurantPizza) RestaurantPizzaView {
	view := RestaurantPizzaView{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
	}
	if rp.Pizza != nil {
		view.Pizza = NewPizzaView(*rp.Pizza)
	}
	if rp.Restaurant != nil {
		view.Restaurant = NewRestaurantView(*rp.Restaurant)
	}
	return view
}
