/*
Package maze provides tools for creating and rendering rectangular grid mazes.

A Maze stores every internal wall of a width x height grid in one flat slice.
Horizontal walls (between vertically adjacent cells) come first, followed by
vertical walls (between horizontally adjacent cells):

	+---+---+---+
	| 02| 12| 22|      horizontal walls    vertical walls
	+---+---+---+      3 4 5               8 11
	| 01| 11| 21|      0 1 2               7 10
	+---+---+---+                          6 9
	| 00| 10| 20|
	+---+---+---+

The y axis grows upward, so cell (0, 0) is the bottom-left corner.

Mazes are carved by the binary tree and sidewinder algorithms and rendered with
box-drawing characters by String.
*/
package maze

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("maze dimensions must be at least 1x1")
	ErrEdgeWall         = errors.New("wall lies on the maze edge")
	ErrUnknownAlgorithm = errors.New("unknown maze algorithm")
	ErrWallCount        = errors.New("wall count does not match maze dimensions")
)

// Wall is the state of a single wall slot.
type Wall bool

const (
	Closed Wall = false
	Open   Wall = true
)

func (w Wall) String() string {
	if w == Open {
		return "open"
	}
	return "closed"
}

// Maze is a rectangular grid of cells whose internal walls are kept in a flat slice.
// A Maze is not safe for concurrent mutation.
type Maze struct {
	width  int    // Number of columns
	height int    // Number of rows
	walls  []Wall // Horizontal walls followed by vertical walls
}

// New creates a maze of the given dimensions with every wall closed.
func New(width, height int) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimension, width, height)
	}

	numVertical := (width - 1) * height
	numHorizontal := (height - 1) * width

	return &Maze{
		width:  width,
		height: height,
		walls:  make([]Wall, numVertical+numHorizontal),
	}, nil
}

// Restore rebuilds a maze from the wall states returned by OpenWalls.
func Restore(width, height int, open []bool) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(open) != len(m.walls) {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrWallCount, len(m.walls), len(open))
	}

	for index, isOpen := range open {
		m.walls[index] = Wall(isOpen)
	}
	return m, nil
}

// OpenWalls returns a copy of the wall slots, true where the wall is open.
func (m *Maze) OpenWalls() []bool {
	open := make([]bool, len(m.walls))
	for index, w := range m.walls {
		open[index] = w == Open
	}
	return open
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// WallCount returns the number of wall slots.
func (m *Maze) WallCount() int {
	return len(m.walls)
}

// IsOpen reports whether the wall slot at index is open.
func (m *Maze) IsOpen(index int) bool {
	return m.walls[index] == Open
}

// OpenWallCount returns the number of open wall slots.
func (m *Maze) OpenWallCount() int {
	count := 0
	for _, w := range m.walls {
		if w == Open {
			count++
		}
	}
	return count
}

// horizontalCount is the number of horizontal wall slots, which precede the vertical ones.
func (m *Maze) horizontalCount() int {
	return (m.height - 1) * m.width
}

// mustInBound panics when (x, y) lies outside the grid.
func (m *Maze) mustInBound(x, y int) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("maze: cell (%d, %d) out of range for %dx%d maze", x, y, m.width, m.height))
	}
}

// NorthWallIndex returns the slot of the wall north of (x, y).
// The second result is false for cells in the top row.
func (m *Maze) NorthWallIndex(x, y int) (int, bool) {
	m.mustInBound(x, y)

	if y >= m.height-1 {
		return 0, false
	}
	return x + y*m.width, true
}

// EastWallIndex returns the slot of the wall east of (x, y).
// The second result is false for cells in the right-most column.
func (m *Maze) EastWallIndex(x, y int) (int, bool) {
	m.mustInBound(x, y)

	if x >= m.width-1 {
		return 0, false
	}
	return m.horizontalCount() + y + x*m.height, true
}

// SouthWallIndex returns the slot of the wall south of (x, y), which is the
// north wall of the cell below. The second result is false for the bottom row.
func (m *Maze) SouthWallIndex(x, y int) (int, bool) {
	if y == 0 {
		return 0, false
	}
	return m.NorthWallIndex(x, y-1)
}

// WestWallIndex returns the slot of the wall west of (x, y), which is the
// east wall of the cell to the left. The second result is false for the left column.
func (m *Maze) WestWallIndex(x, y int) (int, bool) {
	if x == 0 {
		return 0, false
	}
	return m.EastWallIndex(x-1, y)
}

// OpenNorth opens the wall north of cell.
// Returns ErrEdgeWall if that wall is the top edge of the maze.
func (m *Maze) OpenNorth(cell Cell) error {
	index, ok := m.NorthWallIndex(cell.X, cell.Y)
	if !ok {
		return ErrEdgeWall
	}
	m.walls[index] = Open
	return nil
}

// OpenEast opens the wall east of cell.
// Returns ErrEdgeWall if that wall is the right edge of the maze.
func (m *Maze) OpenEast(cell Cell) error {
	index, ok := m.EastWallIndex(cell.X, cell.Y)
	if !ok {
		return ErrEdgeWall
	}
	m.walls[index] = Open
	return nil
}

// wallAt reports the state of the wall in slot index, treating a missing slot as closed.
func (m *Maze) wallAt(index int, ok bool) Wall {
	if !ok {
		return Closed
	}
	return m.walls[index]
}
