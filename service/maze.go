package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCachePrefix  = "maze"
	defaultMaxDimension = 100
	diagramKeyFmt       = "%s:diagram:%s:%dx%d:seed_%d:bias_%g"
)

var _ i.MazeService = &MazeService{}

var (
	ErrMazeNotFound       = errors.New("maze not found")
	ErrDimensionTooLarge  = errors.New("maze dimension too large")
	ErrMissingRepo        = errors.New("maze repository is required")
	ErrCellOutOfMazeBound = errors.New("cell is out of the maze")
)

// Options tunes a MazeService.
type Options struct {
	CachePrefix  string
	MaxDimension int
	DefaultBias  float64
}

// MazeService generates, renders and stores mazes.
type MazeService struct {
	repo   i.MazeRepo
	cache  i.MazeCache
	logger *zap.Logger
	opts   *Options
	now    func() time.Time
}

// NewMazeService creates a MazeService. cache may be nil, in which case previews are never cached.
func NewMazeService(repo i.MazeRepo, cache i.MazeCache, logger *zap.Logger, opts *Options) (*MazeService, error) {
	if repo == nil {
		return nil, ErrMissingRepo
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.CachePrefix == "" {
		opts.CachePrefix = defaultCachePrefix
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.DefaultBias <= 0 || opts.DefaultBias > 1 {
		opts.DefaultBias = maze.DefaultBias
	}

	return &MazeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
		opts:   opts,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Generate carves a maze, stores it and returns the stored record.
func (s *MazeService) Generate(ctx context.Context, params domain.MazeParams) (*domain.MazeRecord, error) {
	params, err := s.normalize(params)
	if err != nil {
		return nil, err
	}

	m, err := s.carve(params)
	if err != nil {
		return nil, err
	}

	record := &domain.MazeRecord{
		ID:        uuid.New(),
		Algorithm: string(params.Algorithm),
		Width:     params.Width,
		Height:    params.Height,
		Seed:      params.Seed,
		Bias:      params.Bias,
		Walls:     m.OpenWalls(),
		Diagram:   m.String(),
		Owner:     params.Owner,
		CreatedAt: s.now(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze: %w", err)
	}

	s.storeDiagram(ctx, s.diagramKey(params), record.Diagram)
	s.logger.Info("maze generated",
		zap.String("id", record.ID.String()),
		zap.String("algorithm", record.Algorithm),
		zap.Int("width", record.Width),
		zap.Int("height", record.Height),
		zap.Int64("seed", record.Seed),
		zap.String("owner", record.Owner),
	)

	return record, nil
}

// Preview carves and renders a maze without storing it.
// Diagrams are cached by their generation parameters when a seed is given.
func (s *MazeService) Preview(ctx context.Context, params domain.MazeParams) (string, error) {
	seeded := params.Seed != 0
	params, err := s.normalize(params)
	if err != nil {
		return "", err
	}

	if !seeded || s.cache == nil {
		return s.render(params)
	}

	key := s.diagramKey(params)
	if diagram, ok := s.cachedDiagram(ctx, key); ok {
		return diagram, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		s.logger.Warn("locking diagram key", zap.String("key", key), zap.Error(err))
		return s.render(params)
	}
	defer unlock()

	// another request may have rendered it while we waited for the lock
	if diagram, ok := s.cachedDiagram(ctx, key); ok {
		return diagram, nil
	}

	diagram, err := s.render(params)
	if err != nil {
		return "", err
	}
	s.storeDiagram(ctx, key, diagram)

	return diagram, nil
}

// ByID retrieves a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*domain.MazeRecord, error) {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, i.ErrNotFound) {
			return nil, ErrMazeNotFound
		}
		return nil, fmt.Errorf("loading maze %s: %w", id, err)
	}
	return record, nil
}

// MovementOptions returns the exits of a cell of a stored maze.
func (s *MazeService) MovementOptions(ctx context.Context, id uuid.UUID, cell maze.Cell) (maze.MovementOptions, error) {
	record, err := s.ByID(ctx, id)
	if err != nil {
		return maze.MovementOptions{}, err
	}

	m, err := maze.Restore(record.Width, record.Height, record.Walls)
	if err != nil {
		return maze.MovementOptions{}, fmt.Errorf("restoring maze %s: %w", id, err)
	}

	if !m.InBound(cell.X, cell.Y) {
		return maze.MovementOptions{}, ErrCellOutOfMazeBound
	}

	return m.MovementOptions(cell), nil
}

// normalize validates params and fills in the seed and bias.
func (s *MazeService) normalize(params domain.MazeParams) (domain.MazeParams, error) {
	if !params.Algorithm.Valid() {
		return params, fmt.Errorf("%w: %q", maze.ErrUnknownAlgorithm, params.Algorithm)
	}

	if params.Width < 1 || params.Height < 1 {
		return params, fmt.Errorf("%w: got %dx%d", maze.ErrInvalidDimension, params.Width, params.Height)
	}

	if max(params.Width, params.Height) > s.opts.MaxDimension {
		return params, fmt.Errorf("%w: limit is %d", ErrDimensionTooLarge, s.opts.MaxDimension)
	}

	if params.Seed == 0 {
		params.Seed = s.now().UnixNano()
	}

	if params.Bias <= 0 || params.Bias > 1 {
		params.Bias = s.opts.DefaultBias
	}

	return params, nil
}

func (s *MazeService) carve(params domain.MazeParams) (*maze.Maze, error) {
	src := maze.NewUniformSource(params.Seed, params.Bias)
	return maze.Generate(params.Algorithm, params.Width, params.Height, src)
}

func (s *MazeService) render(params domain.MazeParams) (string, error) {
	m, err := s.carve(params)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

func (s *MazeService) diagramKey(params domain.MazeParams) string {
	return fmt.Sprintf(diagramKeyFmt, s.opts.CachePrefix, params.Algorithm, params.Width, params.Height, params.Seed, params.Bias)
}

// cachedDiagram looks key up in the cache. Cache failures count as misses.
func (s *MazeService) cachedDiagram(ctx context.Context, key string) (string, bool) {
	diagram, ok, err := s.cache.Diagram(ctx, key)
	if err != nil {
		s.logger.Warn("reading diagram cache", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return diagram, ok
}

func (s *MazeService) storeDiagram(ctx context.Context, key, diagram string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.StoreDiagram(ctx, key, diagram); err != nil {
		s.logger.Warn("writing diagram cache", zap.String("key", key), zap.Error(err))
	}
}
