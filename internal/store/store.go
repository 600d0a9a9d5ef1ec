package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// ErrNotFound signals a lookup for an id with no matching record. It is a
// normal negative result, not a fault.
var ErrNotFound = errors.New("simulation not found")

// Store is the persistence contract for simulations. There is no update or
// delete: simulations are write-once.
type Store interface {
	// Create inserts a new simulation row and returns it with its assigned
	// id and creation timestamp
	Create(ctx context.Context, profile models.Profile, result datatypes.JSON) (*models.Simulation, error)

	// GetByID returns the matching simulation or ErrNotFound
	GetByID(ctx context.Context, id int) (*models.Simulation, error)

	// ListAll returns every simulation, newest first. Unpaginated; callers
	// should treat the result as possibly large.
	ListAll(ctx context.Context) ([]models.Simulation, error)

	// Ping checks connectivity to the underlying database
	Ping(ctx context.Context) error
}

type gormStore struct {
	db *gorm.DB
}

// NewWithDB wraps an existing gorm connection in a Store.
func NewWithDB(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, profile models.Profile, result datatypes.JSON) (*models.Simulation, error) {
	sim := models.Simulation{
		Skills:       profile.Skills,
		Interests:    profile.Interests,
		Availability: profile.Availability,
		Background:   profile.Background,
		Goals:        profile.Goals,
		Result:       result,
	}

	if err := s.db.WithContext(ctx).Create(&sim).Error; err != nil {
		return nil, fmt.Errorf("persisting simulation: %w", err)
	}

	return &sim, nil
}

func (s *gormStore) GetByID(ctx context.Context, id int) (*models.Simulation, error) {
	var sim models.Simulation
	err := s.db.WithContext(ctx).First(&sim, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading simulation %d: %w", id, err)
	}
	return &sim, nil
}

func (s *gormStore) ListAll(ctx context.Context) ([]models.Simulation, error) {
	var sims []models.Simulation
	// id is the tiebreak for rows created within the same timestamp tick
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&sims).Error
	if err != nil {
		return nil, fmt.Errorf("listing simulations: %w", err)
	}
	return sims, nil
}

func (s *gormStore) Ping(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}
