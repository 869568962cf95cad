package models

import "time"

// Contact is a message left through the contact or complaint forms.
type Contact struct {
	ID        string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" bson:"name" validate:"required,max=100"`
	Email     string    `json:"email" bson:"email" validate:"required,max=255"`
	Message   string    `json:"message" bson:"message" gorm:"type:text" validate:"required,max=5000"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
