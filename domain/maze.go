package domain

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeRecord is a generated maze as it is stored and served.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Algorithm string    `bson:"algorithm" json:"algorithm"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Seed      int64     `bson:"seed" json:"seed"`
	Bias      float64   `bson:"bias" json:"bias"`
	Walls     []bool    `bson:"walls" json:"walls"`         // Wall slots, true when open
	Diagram   string    `bson:"diagram" json:"diagram"`     // Box-drawing rendering
	Owner     string    `bson:"owner" json:"owner"`         // Subject of the token that created it
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"` // Creation time in UTC
}

// MazeParams describes the maze to carve.
type MazeParams struct {
	Algorithm maze.Algorithm
	Width     int
	Height    int
	Seed      int64   // Zero picks a random seed
	Bias      float64 // Probability of a coin flip landing true; zero uses the service default
	Owner     string
}
