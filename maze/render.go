package maze

import (
	"strings"
)

const (
	lineEnding         = "\n"
	horizontalSegment  = "───"
	verticalSegment    = "│"
	noHorizontalWall   = "   "
	noVerticalWall     = " "
	cellInterior       = "   "
	topLeftCorner      = "┌"
	topRightCorner     = "┐"
	bottomLeftCorner   = "└"
	bottomRightCorner  = "┘"
	leftEdgeJoint      = "├"
	rightEdgeJoint     = "┤"
	bottomEdgeJoint    = "┴"
	topEdgeJoint       = "┬"
	horizontalPassthru = "─"
)

// Interior corner glyphs indexed by the closed state of the walls touching the
// lattice point: up = 8, right = 4, down = 2, left = 1.
var cornerGlyphs = [16]string{
	" ", "╴", "╷", "┐",
	"╶", "─", "┌", "┬",
	"╵", "┘", "│", "┤",
	"└", "┴", "├", "┼",
}

// String renders the maze with box-drawing characters, north at the top.
// Lines are separated by "\n" without a trailing newline.
func (m *Maze) String() string {
	var b strings.Builder

	// top edge
	b.WriteString(topLeftCorner)
	for x := 1; x <= m.width; x++ {
		b.WriteString(horizontalSegment)
		b.WriteString(m.corner(x, m.height))
	}

	for y := m.height - 1; y >= 0; y-- {
		b.WriteString(lineEnding)

		// cells and their east walls
		b.WriteString(verticalSegment)
		for x := 0; x < m.width; x++ {
			b.WriteString(cellInterior)
			if m.wallAt(m.EastWallIndex(x, y)) == Open {
				b.WriteString(noVerticalWall)
			} else {
				b.WriteString(verticalSegment)
			}
		}

		b.WriteString(lineEnding)

		// south walls and the corners between them
		b.WriteString(m.corner(0, y))
		for x := 0; x < m.width; x++ {
			if m.wallAt(m.SouthWallIndex(x, y)) == Open {
				b.WriteString(noHorizontalWall)
			} else {
				b.WriteString(horizontalSegment)
			}
			b.WriteString(m.corner(x+1, y))
		}
	}

	return b.String()
}

// corner returns the glyph for the lattice point at the bottom-left of cell (x, y).
// x ranges over [0, width] and y over [0, height].
func (m *Maze) corner(x, y int) string {
	switch {
	case x == 0 && y == 0:
		return bottomLeftCorner
	case x == 0 && y == m.height:
		return topLeftCorner
	case x == m.width && y == 0:
		return bottomRightCorner
	case x == m.width && y == m.height:
		return topRightCorner
	case x == 0:
		return edgeGlyph(m.wallAt(m.SouthWallIndex(0, y)), verticalSegment, leftEdgeJoint)
	case x == m.width:
		return edgeGlyph(m.wallAt(m.SouthWallIndex(x-1, y)), verticalSegment, rightEdgeJoint)
	case y == 0:
		return edgeGlyph(m.wallAt(m.EastWallIndex(x-1, 0)), horizontalPassthru, bottomEdgeJoint)
	case y == m.height:
		return edgeGlyph(m.wallAt(m.EastWallIndex(x-1, y-1)), horizontalPassthru, topEdgeJoint)
	}

	index := 0
	if m.wallAt(m.EastWallIndex(x-1, y)) == Closed {
		index |= 8
	}
	if m.wallAt(m.NorthWallIndex(x, y-1)) == Closed {
		index |= 4
	}
	if m.wallAt(m.EastWallIndex(x-1, y-1)) == Closed {
		index |= 2
	}
	if m.wallAt(m.NorthWallIndex(x-1, y-1)) == Closed {
		index |= 1
	}
	return cornerGlyphs[index]
}

// edgeGlyph picks the glyph for a lattice point on the maze border from the one
// internal wall meeting it.
func edgeGlyph(w Wall, open, closed string) string {
	if w == Open {
		return open
	}
	return closed
}
