package models

import "time"

// Product represents a product in the store.
type Product struct {
	ID          string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Title       string    `json:"title" bson:"title" gorm:"not null" validate:"required,max=200"`
	Description string    `json:"description" bson:"description" validate:"max=2000"`
	Price       float64   `json:"price" bson:"price" gorm:"not null" validate:"gte=0"`
	Category    string    `json:"category" bson:"category" validate:"max=100"`
	Image       string    `json:"image" bson:"image" validate:"omitempty,max=2048"`
	CreatedBy   string    `json:"createdBy,omitempty" bson:"createdBy,omitempty" gorm:"type:varchar(36);index"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductInput is the body accepted when an admin creates a product.
// Price is a pointer so that a missing price can be told apart from 0.
type ProductInput struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"max=100"`
	Image       string   `json:"image" validate:"omitempty,max=2048"`
}

// ProductUpdate lists the only fields an update may touch. Nil fields are left as they are.
type ProductUpdate struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Image       *string  `json:"image" validate:"omitempty,max=2048"`
}

// Fields returns the set fields keyed by their stored column name.
func (u ProductUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Price != nil {
		fields["price"] = *u.Price
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	return fields
}
