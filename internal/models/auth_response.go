package models

// Profile is the subset of user fields safe to return to a caller.
// The password hash is never part of it.
type Profile struct {
	ID        int64   `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Username  *string `json:"username"`
	Email     string  `json:"email"`
}

// RegisterResponse represents the response after successful registration
type RegisterResponse struct {
	OK bool `json:"ok"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	OK   bool    `json:"ok"`
	User Profile `json:"user"`
}
