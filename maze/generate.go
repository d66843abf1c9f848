package maze

import (
	"time"
)

// Algorithm names a maze carving procedure.
type Algorithm string

const (
	AlgorithmBinaryTree Algorithm = "binary-tree"
	AlgorithmSidewinder Algorithm = "sidewinder"
)

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a == AlgorithmBinaryTree || a == AlgorithmSidewinder
}

// Generate carves a maze of the given dimensions with algorithm a.
func Generate(a Algorithm, width, height int, src RandomSource) (*Maze, error) {
	switch a {
	case AlgorithmBinaryTree:
		return BinaryTreeWith(width, height, src)
	case AlgorithmSidewinder:
		return SidewinderWith(width, height, src)
	default:
		return nil, ErrUnknownAlgorithm
	}
}

// BinaryTree carves a maze with the binary tree algorithm using a time-seeded source.
func BinaryTree(width, height int) (*Maze, error) {
	return BinaryTreeWith(width, height, NewUniformSource(time.Now().UnixNano(), DefaultBias))
}

// BinaryTreeWith carves a maze with the binary tree algorithm.
//
// Every cell opens either its north or its east wall depending on a coin flip,
// falling back to the other one on the maze edge. The north-east corner cell
// opens nothing.
func BinaryTreeWith(width, height int, src RandomSource) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	it := NewCellIterator(m)
	for cell, ok := it.Next(); ok; cell, ok = it.Next() {
		if src.Bool() {
			if err := m.OpenNorth(cell); err != nil {
				_ = m.OpenEast(cell)
			}
		} else {
			if err := m.OpenEast(cell); err != nil {
				_ = m.OpenNorth(cell)
			}
		}
	}

	return m, nil
}

// Sidewinder carves a maze with the sidewinder algorithm using a time-seeded source.
func Sidewinder(width, height int) (*Maze, error) {
	return SidewinderWith(width, height, NewUniformSource(time.Now().UnixNano(), DefaultBias))
}

// SidewinderWith carves a maze with the sidewinder algorithm.
//
// Cells are collected into a run. When the coin lands true a random cell of the
// run opens north (east in the top row) and the run ends. Otherwise the current
// cell opens east; at the right edge it opens north instead and the run ends.
//
// In the top row the east fallback applies to the selected cell, not the current
// one, so a run closed on an earlier cell leaves the next run unconnected.
func SidewinderWith(width, height int, src RandomSource) (*Maze, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}

	run := make([]Cell, 0, width)
	it := NewCellIterator(m)
	for cell, ok := it.Next(); ok; cell, ok = it.Next() {
		run = append(run, cell)

		if src.Bool() {
			index := src.Int() % len(run)
			if index < 0 {
				index += len(run)
			}
			selected := run[index]
			run = run[:0]
			if err := m.OpenNorth(selected); err != nil {
				_ = m.OpenEast(selected)
			}
			continue
		}

		if err := m.OpenEast(cell); err != nil {
			run = run[:0]
			_ = m.OpenNorth(cell)
		}
	}

	return m, nil
}
