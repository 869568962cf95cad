package models

// SignupInput is the body of a signup request.
type SignupInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginInput is the body of a login request.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FeedbackInput is the body of a public feedback submission.
type FeedbackInput struct {
	ProductID string `json:"productId"`
	Type      string `json:"type"`
	Rating    *int   `json:"rating"`
	Message   string `json:"message"`
	Email     string `json:"email"`
}

// ContactInput is the body of a contact form submission.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
