// Package mazeapi provides the HTTP handlers and payloads for generating and reading mazes.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to carve a maze. It is read from the JSON body
// when creating a maze and from the query string when previewing one.
type GenerateRequest struct {
	Algorithm string  `json:"algorithm" form:"algorithm" binding:"required"`
	Width     int     `json:"width" form:"width" binding:"required,min=1"`
	Height    int     `json:"height" form:"height" binding:"required,min=1"`
	Seed      int64   `json:"seed" form:"seed"`
	Bias      float64 `json:"bias" form:"bias" binding:"omitempty,gt=0,lte=1"`
}

// MazeResponse represents a stored maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Algorithm string    `json:"algorithm"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Bias      float64   `json:"bias"`
	Walls     []bool    `json:"walls"`
	Diagram   string    `json:"diagram"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

func newMazeResponse(r *domain.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:        r.ID,
		Algorithm: r.Algorithm,
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		Bias:      r.Bias,
		Walls:     r.Walls,
		Diagram:   r.Diagram,
		Owner:     r.Owner,
		CreatedAt: r.CreatedAt,
	}
}
