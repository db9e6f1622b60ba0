package services

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sellfurniture/marketplace-be/internal/models"
)

// ItemInput carries the client-supplied fields for a new listing.
// Price is a pointer so a missing price can be told apart from zero.
type ItemInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        *float64 `json:"price"`
	RetailPrice  *float64 `json:"retailPrice"`
	LocationID   *string  `json:"locationId"`
	Available    *bool    `json:"available"`
	URL          string   `json:"url"`
	Instructions string   `json:"instructions"`
}

// ItemServiceProvider defines the interface for item services.
type ItemServiceProvider interface {
	Create(input ItemInput, createdBy string) (models.Item, error)
	List() ([]models.Item, error)
	Count() (int, error)
	Search(query string) ([]models.Item, error)
}

// ItemService provides business logic for furniture listings.
type ItemService struct {
	db *sql.DB
}

// NewItemService creates a new ItemService.
func NewItemService(db *sql.DB) *ItemService {
	return &ItemService{db: db}
}

const itemColumns = "id, name, title, description, price, retail_price, location_id, available, url, instructions, created_by, created_at"

// Create persists a new listing stamped with its creator and creation
// time. Optional text fields default to empty, availability to true. The
// location reference is stored as-is, without an existence check.
func (s *ItemService) Create(input ItemInput, createdBy string) (models.Item, error) {
	if input.Title == "" || input.Price == nil {
		return models.Item{}, ErrTitleAndPriceRequired
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	item := models.Item{
		ID:           uuid.New().String(),
		Title:        input.Title,
		Description:  input.Description,
		Price:        *input.Price,
		RetailPrice:  input.RetailPrice,
		LocationID:   input.LocationID,
		Available:    available,
		URL:          input.URL,
		Instructions: input.Instructions,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO items("+itemColumns+") VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.Name, item.Title, item.Description, item.Price, item.RetailPrice,
		item.LocationID, item.Available, item.URL, item.Instructions, item.CreatedBy, item.CreatedAt)
	if err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// List returns all stored items in storage order.
func (s *ItemService) List() ([]models.Item, error) {
	rows, err := s.db.Query("SELECT " + itemColumns + " FROM items")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

// Count returns the total number of stored items without materializing them.
func (s *ItemService) Count() (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&n)
	return n, err
}

// Search returns every item whose name, title or description contains the
// query, case-insensitively. Matching is OR across the three fields.
func (s *ItemService) Search(query string) ([]models.Item, error) {
	if query == "" {
		return nil, ErrSearchQueryRequired
	}

	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.Query("SELECT "+itemColumns+" FROM items WHERE lower(name) LIKE ? OR lower(title) LIKE ? OR lower(description) LIKE ?",
		pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Title, &item.Description, &item.Price,
			&item.RetailPrice, &item.LocationID, &item.Available, &item.URL, &item.Instructions,
			&item.CreatedBy, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
