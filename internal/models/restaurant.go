package models

// Restaurant represents a restaurant and owns its menu entries
type Restaurant struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	// Deleting a restaurant removes its menu entries
	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
