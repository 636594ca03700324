package domain

// Product represents a catalog item stored in the "product" collection
type Product struct {
	Title       string  `gorm:"not null" json:"title" bson:"title"`
	Description *string `json:"description" bson:"description"`
	Price       float64 `gorm:"not null" json:"price" bson:"price"` // price in dollars
	Category    string  `gorm:"not null" json:"category" bson:"category"`
	InStock     bool    `gorm:"not null" json:"in_stock" bson:"in_stock"`
}

// TableName Specify collection name
func (Product) TableName() string {
	return "product"
}
