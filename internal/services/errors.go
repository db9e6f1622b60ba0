package services

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two must stay indistinguishable to the client so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	ErrEmailAndPasswordRequired = errors.New("Email and password are required")
	ErrUserExists               = errors.New("User already exists")
	ErrUserNotFound             = errors.New("User not found")

	ErrLocationNameRequired  = errors.New("Location name is required")
	ErrTitleAndPriceRequired = errors.New("Title and price are required")
	ErrSearchQueryRequired   = errors.New("Search query is required")
)
