package i

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when no record matches a lookup.
var ErrNotFound = errors.New("record not found")

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a maze record.
	Save(ctx context.Context, record *domain.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns ErrNotFound when no record matches.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)
}
