package models

// Pizza represents a pizza on the menu of one or more restaurants
type Pizza struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`

	RestaurantPizzas []RestaurantPizza `gorm:"foreignKey:PizzaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}
