package domain

// User represents a person stored in the "user" collection.
// Email is free-form text, it is not checked for address syntax.
type User struct {
	Name     string `gorm:"not null" json:"name" bson:"name"`
	Email    string `gorm:"not null" json:"email" bson:"email"`
	Address  string `gorm:"not null" json:"address" bson:"address"`
	Age      *int   `json:"age" bson:"age"` // years
	IsActive bool   `gorm:"not null" json:"is_active" bson:"is_active"`
}

// TableName Specify collection name
func (User) TableName() string {
	return "user"
}
