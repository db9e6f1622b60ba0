package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/sellfurniture/marketplace-be/internal/models"
)

// VisitServiceProvider defines the interface for visit logging.
type VisitServiceProvider interface {
	Record(ip, userAgent string) (models.Visit, error)
}

// VisitService appends page-view entries to the access log. Visits are
// write-only in this service; nothing reads them back.
type VisitService struct {
	db *sql.DB
}

// NewVisitService creates a new VisitService.
func NewVisitService(db *sql.DB) *VisitService {
	return &VisitService{db: db}
}

// Record persists one page view stamped with the current time.
func (s *VisitService) Record(ip, userAgent string) (models.Visit, error) {
	visit := models.Visit{
		ID:        uuid.New().String(),
		IP:        ip,
		UserAgent: userAgent,
		VisitedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO visits(id, ip, user_agent, visited_at) VALUES(?, ?, ?, ?)",
		visit.ID, visit.IP, visit.UserAgent, visit.VisitedAt)
	if err != nil {
		return models.Visit{}, err
	}
	return visit, nil
}
