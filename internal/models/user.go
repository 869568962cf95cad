package models

import "time"

// User represents a user of the store.
type User struct {
	ID        string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" bson:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Email     string    `json:"email" bson:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" bson:"password" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash once stored
	IsAdmin   bool      `json:"isAdmin" bson:"isAdmin"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
