package maze

// Cell is the position of a single cell in the maze grid.
type Cell struct {
	X int // Column, growing east
	Y int // Row, growing north
}

// CellIterator walks the cells of a maze in row-major order,
// x fastest and y slowest. Once exhausted it stays exhausted.
type CellIterator struct {
	currentX int
	currentY int
	maxX     int
	maxY     int
}

// NewCellIterator returns an iterator positioned at cell (0, 0) of m.
func NewCellIterator(m *Maze) *CellIterator {
	return &CellIterator{
		maxX: m.width - 1,
		maxY: m.height - 1,
	}
}

// Next returns the next cell. The second result is false once every cell has been produced.
func (it *CellIterator) Next() (Cell, bool) {
	if it.currentY > it.maxY {
		return Cell{}, false
	}

	cell := Cell{X: it.currentX, Y: it.currentY}
	if it.currentX < it.maxX {
		it.currentX++
	} else {
		// wrap to the start of the next row
		it.currentX = 0
		it.currentY++
	}

	return cell, true
}

// MovementOptions holds the neighbours reachable from a cell.
// A nil direction means a closed wall or the maze edge.
type MovementOptions struct {
	North *Cell `json:"north,omitempty"`
	East  *Cell `json:"east,omitempty"`
	South *Cell `json:"south,omitempty"`
	West  *Cell `json:"west,omitempty"`
}

// Cells returns the reachable neighbours in north, east, south, west order.
func (mo MovementOptions) Cells() []Cell {
	var cells []Cell
	for _, c := range []*Cell{mo.North, mo.East, mo.South, mo.West} {
		if c != nil {
			cells = append(cells, *c)
		}
	}
	return cells
}

// MovementOptions returns the neighbours of cell that are not separated from it by a closed wall.
func (m *Maze) MovementOptions(cell Cell) MovementOptions {
	var mo MovementOptions

	if m.wallAt(m.NorthWallIndex(cell.X, cell.Y)) == Open {
		mo.North = &Cell{X: cell.X, Y: cell.Y + 1}
	}
	if m.wallAt(m.EastWallIndex(cell.X, cell.Y)) == Open {
		mo.East = &Cell{X: cell.X + 1, Y: cell.Y}
	}
	if m.wallAt(m.SouthWallIndex(cell.X, cell.Y)) == Open {
		mo.South = &Cell{X: cell.X, Y: cell.Y - 1}
	}
	if m.wallAt(m.WestWallIndex(cell.X, cell.Y)) == Open {
		mo.West = &Cell{X: cell.X - 1, Y: cell.Y}
	}

	return mo
}

// InBound reports whether (x, y) is a cell of the maze.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Reachable returns the number of cells reachable from (0, 0) through open walls.
func (m *Maze) Reachable() int {
	visited := make([]bool, m.width*m.height)
	visited[0] = true
	queue := []Cell{{X: 0, Y: 0}}
	count := 0

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		count++

		for _, nbr := range m.MovementOptions(cell).Cells() {
			key := nbr.X + nbr.Y*m.width
			if !visited[key] {
				visited[key] = true
				queue = append(queue, nbr)
			}
		}
	}

	return count
}

// IsPerfect reports whether there is exactly one path between every pair of cells,
// that is, the maze is connected and has width*height-1 open walls.
func (m *Maze) IsPerfect() bool {
	cells := m.width * m.height
	return m.OpenWallCount() == cells-1 && m.Reachable() == cells
}
