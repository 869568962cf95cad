package repositories

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the document store.
const (
	UsersCollection    = "users"
	ProductsCollection = "products"
	ContactsCollection = "contacts"
	FeedbackCollection = "feedback"
)

// NewMongoSet wires all MongoDB repositories to d.
func NewMongoSet(d *mongo.Database) *Set {
	return &Set{
		Users:    NewMongoUserRepository(d),
		Products: NewMongoProductRepository(d),
		Contacts: NewMongoContactRepository(d),
		Feedback: NewMongoFeedbackRepository(d),
	}
}

// newObjectID returns a fresh ObjectID in hex; documents keep string ids so
// both stores hand out the same id type.
func newObjectID() string {
	return primitive.NewObjectID().Hex()
}

// now is the current UTC time at the millisecond precision BSON dates keep,
// so a freshly created document matches what a later read returns.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
