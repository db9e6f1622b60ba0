package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sellfurniture/marketplace-be/internal/models"
)

// UserServiceProvider defines the interface for the authentication service.
type UserServiceProvider interface {
	Register(email, password, name string) (models.User, error)
	Authenticate(email, password string) (models.User, error)
	GetByEmail(email string) (models.User, error)
}

// UserService provides registration and credential verification.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new account with the "user" role, hashing the
// password. The duplicate check is a read-before-write; the UNIQUE index
// on email backstops the race between two concurrent registrations.
func (s *UserService) Register(email, password, name string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, ErrEmailAndPasswordRequired
	}

	var existing int
	row := s.db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", email)
	if err := row.Scan(&existing); err != nil {
		return models.User{}, err
	}
	if existing > 0 {
		return models.User{}, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec("INSERT INTO users(id, email, name, role, password_hash, created_at) VALUES(?, ?, ?, ?, ?, ?)",
		user.ID, user.Email, user.Name, user.Role, string(hashed), user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies a user's credentials. An unknown email and a
// wrong password fail with the same error.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	var user models.User
	var hash string
	row := s.db.QueryRow("SELECT id, email, name, role, password_hash, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &hash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetByEmail returns the account summary for an already-verified
// identity. The record may be gone if the account was removed after the
// token was issued.
func (s *UserService) GetByEmail(email string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, email, name, role, created_at FROM users WHERE email = ?", email)
	err := row.Scan(&user.ID, &user.Email, &user.Name, &user.Role, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}
