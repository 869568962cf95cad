package repositories

import (
	"bottleshop/internal/models"

	"gorm.io/gorm"
)

// GORMModels lists the tables the GORM repositories expect to exist.
var GORMModels = []interface{}{
	&models.User{},
	&models.Product{},
	&models.Contact{},
	&models.Feedback{},
}

// NewGORMSet wires all GORM repositories to db.
func NewGORMSet(db *gorm.DB) *Set {
	return &Set{
		Users:    NewGORMUserRepository(db),
		Products: NewGORMProductRepository(db),
		Contacts: NewGORMContactRepository(db),
		Feedback: NewGORMFeedbackRepository(db),
	}
}
