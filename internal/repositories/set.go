package repositories

// Set bundles the repositories of one backing store.
type Set struct {
	Users    UserRepository
	Products ProductRepository
	Contacts ContactRepository
	Feedback FeedbackRepository
}
