package i

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeCache stores rendered diagrams keyed by their generation parameters.
type MazeCache interface {
	// Diagram returns the cached diagram for key. The second result is false on a miss.
	Diagram(ctx context.Context, key string) (string, bool, error)

	// StoreDiagram caches diagram under key.
	StoreDiagram(ctx context.Context, key, diagram string) error

	// Lock acquires an exclusive lock on key and returns the function releasing it.
	Lock(ctx context.Context, key string) (func(), error)
}

// MazeService generates, renders and looks up mazes.
type MazeService interface {
	// Generate carves a maze, stores it and returns the stored record.
	Generate(ctx context.Context, params domain.MazeParams) (*domain.MazeRecord, error)

	// Preview carves and renders a maze without storing it.
	Preview(ctx context.Context, params domain.MazeParams) (string, error)

	// ByID retrieves a stored maze.
	ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error)

	// MovementOptions returns the exits of a cell of a stored maze.
	MovementOptions(ctx context.Context, id uuid.UUID, cell maze.Cell) (maze.MovementOptions, error)
}
