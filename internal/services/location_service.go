package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sellfurniture/marketplace-be/internal/models"
)

// LocationServiceProvider defines the interface for location services.
type LocationServiceProvider interface {
	Create(name, createdBy string) (models.Location, error)
	List() ([]models.Location, error)
}

// LocationService provides business logic for pickup locations.
type LocationService struct {
	db *sql.DB
}

// NewLocationService creates a new LocationService.
func NewLocationService(db *sql.DB) *LocationService {
	return &LocationService{db: db}
}

// Create persists a new location stamped with its creator and creation time.
func (s *LocationService) Create(name, createdBy string) (models.Location, error) {
	if name == "" {
		return models.Location{}, ErrLocationNameRequired
	}

	loc := models.Location{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO locations(id, name, created_by, created_at) VALUES(?, ?, ?, ?)",
		loc.ID, loc.Name, loc.CreatedBy, loc.CreatedAt)
	if err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

// List returns all stored locations in storage order.
func (s *LocationService) List() ([]models.Location, error) {
	rows, err := s.db.Query("SELECT id, name, created_by, created_at FROM locations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.CreatedBy, &loc.CreatedAt); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}
