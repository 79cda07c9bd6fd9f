package models

const (
	// MinPrice and MaxPrice bound RestaurantPizza.Price, both inclusive
	MinPrice = 1
	MaxPrice = 30
)

// RestaurantPizza links one restaurant to one pizza and carries the price
// the restaurant charges for it
type RestaurantPizza struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	Price        int  `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	PizzaID      uint `gorm:"not null;index" json:"pizza_id"`
	RestaurantID uint `gorm:"not null;index" json:"restaurant_id"`

	Pizza      *Pizza      `gorm:"foreignKey:PizzaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// ValidPrice reports whether price lies in the accepted range
func ValidPrice(price int) bool {
	return price >= MinPrice && price <= MaxPrice
}
