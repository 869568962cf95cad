package models

import "time"

// Feedback types.
const (
	FeedbackBug        = "bug"
	FeedbackSuggestion = "suggestion"
	FeedbackCompliment = "compliment"
	FeedbackOther      = "other"
)

// Feedback statuses.
const (
	FeedbackStatusNew      = "new"
	FeedbackStatusReviewed = "reviewed"
	FeedbackStatusClosed   = "closed"
)

// MaxFeedbackList caps how many feedback records a single listing returns.
const MaxFeedbackList = 200

// Feedback is a customer report about the shop or one of its products.
type Feedback struct {
	ID        string    `json:"_id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"productId,omitempty" bson:"productId,omitempty" gorm:"type:varchar(36);index"`
	Type      string    `json:"type" bson:"type" gorm:"type:varchar(20);not null;index" validate:"required,oneof=bug suggestion compliment other"`
	Rating    *int      `json:"rating,omitempty" bson:"rating,omitempty" gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)" validate:"omitempty,min=1,max=5"`
	Message   string    `json:"message" bson:"message" gorm:"type:text;not null" validate:"required,max=5000"`
	Email     string    `json:"email,omitempty" bson:"email,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Status    string    `json:"status" bson:"status" gorm:"type:varchar(20);not null;index" validate:"required,oneof=new reviewed closed"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FeedbackFilter holds the query parameters an admin may filter feedback by.
// Anything else in the query string is ignored.
type FeedbackFilter struct {
	Type      string `query:"type" json:"type,omitempty" validate:"omitempty,oneof=bug suggestion compliment other"`
	Status    string `query:"status" json:"status,omitempty" validate:"omitempty,oneof=new reviewed closed"`
	ProductID string `query:"productId" json:"productId,omitempty" validate:"omitempty,max=64"`
	Email     string `query:"email" json:"email,omitempty" validate:"omitempty,email"`
}
