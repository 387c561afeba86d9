// Package catalog resolves routine definitions from their two sources: the
// static base catalog compiled into the binary and the therapist-authored
// routines persisted in the database.
package catalog

import (
	"errors"

	"gorm.io/gorm"

	"medihome/backend/models"
)

// ErrNotFound is returned when a routine id resolves in no repository.
var ErrNotFound = errors.New("routine not found")

// Repository is a read model over routine definitions.
type Repository interface {
	List() ([]models.Routine, error)
	Resolve(id string) (*models.Routine, error)
}

// Static serves the built-in base catalog.
type Static struct {
	routines []models.Routine
}

func NewStatic() *Static {
	return &Static{routines: baseRoutines}
}

func (s *Static) List() ([]models.Routine, error) {
	out := make([]models.Routine, len(s.routines))
	copy(out, s.routines)
	return out, nil
}

func (s *Static) Resolve(id string) (*models.Routine, error) {
	for i := range s.routines {
		if s.routines[i].ID == id {
			r := s.routines[i]
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

// Store serves custom routines persisted with GORM.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List() ([]models.Routine, error) {
	var routines []models.Routine
	if err := s.db.Order("created_at").Find(&routines).Error; err != nil {
		return nil, err
	}
	return routines, nil
}

func (s *Store) Resolve(id string) (*models.Routine, error) {
	var routine models.Routine
	if err := s.db.Where("id = ?", id).First(&routine).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &routine, nil
}

// Chain composes repositories with first-match-wins resolution; listing
// concatenates every repository in order.
type Chain []Repository

func (c Chain) List() ([]models.Routine, error) {
	var all []models.Routine
	for _, repo := range c {
		routines, err := repo.List()
		if err != nil {
			return nil, err
		}
		all = append(all, routines...)
	}
	return all, nil
}

func (c Chain) Resolve(id string) (*models.Routine, error) {
	for _, repo := range c {
		routine, err := repo.Resolve(id)
		if err == nil {
			return routine, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}
