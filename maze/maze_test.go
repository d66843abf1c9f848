package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Allocates every wall closed", func(t *testing.T) {
		for width := 1; width <= 6; width++ {
			for height := 1; height <= 6; height++ {
				m, err := New(width, height)
				require.NoError(t, err)

				expected := (width-1)*height + (height-1)*width
				assert.Equal(t, expected, m.WallCount(), "%dx%d", width, height)
				assert.Zero(t, m.OpenWallCount(), "%dx%d", width, height)
			}
		}
	})

	t.Run("Rejects empty dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}, {-1, 4}} {
			m, err := New(dims[0], dims[1])
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, ErrInvalidDimension))
		}
	})
}

func TestWallIndexes(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	type indexes struct {
		north, east, south, west int
	}
	const none = -1
	lookup := func(f func(x, y int) (int, bool), x, y int) int {
		index, ok := f(x, y)
		if !ok {
			return none
		}
		return index
	}

	tests := []struct {
		name     string
		x, y     int
		expected indexes
	}{
		{name: "Cell 00", x: 0, y: 0, expected: indexes{north: 0, east: 6, south: none, west: none}},
		{name: "Cell 11", x: 1, y: 1, expected: indexes{north: 4, east: 10, south: 1, west: 7}},
		{name: "Cell 22", x: 2, y: 2, expected: indexes{north: none, east: none, south: 5, west: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected.north, lookup(m.NorthWallIndex, tt.x, tt.y))
			assert.Equal(t, tt.expected.east, lookup(m.EastWallIndex, tt.x, tt.y))
			assert.Equal(t, tt.expected.south, lookup(m.SouthWallIndex, tt.x, tt.y))
			assert.Equal(t, tt.expected.west, lookup(m.WestWallIndex, tt.x, tt.y))
		})
	}
}

func TestWallIndexSymmetry(t *testing.T) {
	m, err := New(5, 4)
	require.NoError(t, err)

	seen := map[int]struct{}{}
	for x := 0; x < m.Width(); x++ {
		for y := 0; y < m.Height(); y++ {
			if north, ok := m.NorthWallIndex(x, y); ok {
				south, ok := m.SouthWallIndex(x, y+1)
				require.True(t, ok)
				assert.Equal(t, north, south)
				seen[north] = struct{}{}
			}
			if east, ok := m.EastWallIndex(x, y); ok {
				west, ok := m.WestWallIndex(x+1, y)
				require.True(t, ok)
				assert.Equal(t, east, west)
				seen[east] = struct{}{}
			}
		}
	}

	// every slot belongs to exactly one pair of cells
	assert.Len(t, seen, m.WallCount())
}

func TestWallIndexOutOfRangePanics(t *testing.T) {
	m, err := New(3, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { m.NorthWallIndex(3, 0) })
	assert.Panics(t, func() { m.EastWallIndex(0, 3) })
	assert.Panics(t, func() { m.NorthWallIndex(-1, 0) })
}

func TestOpenWalls(t *testing.T) {
	t.Run("Open north wall", func(t *testing.T) {
		m, _ := New(3, 3)

		require.NoError(t, m.OpenNorth(Cell{X: 0, Y: 0}))

		assert.True(t, m.IsOpen(0))
		assert.Equal(t, 1, m.OpenWallCount())
	})

	t.Run("Open east wall", func(t *testing.T) {
		m, _ := New(3, 3)

		require.NoError(t, m.OpenEast(Cell{X: 0, Y: 0}))

		assert.True(t, m.IsOpen(6))
		assert.Equal(t, 1, m.OpenWallCount())
	})

	t.Run("Opening twice is a no-op", func(t *testing.T) {
		m, _ := New(3, 3)
		cell := Cell{X: 1, Y: 1}

		require.NoError(t, m.OpenNorth(cell))
		require.NoError(t, m.OpenNorth(cell))
		require.NoError(t, m.OpenEast(cell))
		require.NoError(t, m.OpenEast(cell))

		assert.True(t, m.IsOpen(4))
		assert.True(t, m.IsOpen(10))
		assert.Equal(t, 2, m.OpenWallCount())
	})

	t.Run("Edge walls cannot be opened", func(t *testing.T) {
		m, _ := New(3, 3)

		assert.ErrorIs(t, m.OpenNorth(Cell{X: 1, Y: 2}), ErrEdgeWall)
		assert.ErrorIs(t, m.OpenEast(Cell{X: 2, Y: 1}), ErrEdgeWall)
		assert.Zero(t, m.OpenWallCount())
	})
}

func TestRestore(t *testing.T) {
	t.Run("Round trips carved walls", func(t *testing.T) {
		original, err := SidewinderWith(6, 4, NewUniformSource(11, DefaultBias))
		require.NoError(t, err)

		restored, err := Restore(6, 4, original.OpenWalls())
		require.NoError(t, err)

		assert.Equal(t, original.String(), restored.String())
		assert.Equal(t, original.OpenWallCount(), restored.OpenWallCount())
	})

	t.Run("Rejects a mismatched wall count", func(t *testing.T) {
		_, err := Restore(3, 3, make([]bool, 11))
		assert.ErrorIs(t, err, ErrWallCount)
	})

	t.Run("Rejects invalid dimensions", func(t *testing.T) {
		_, err := Restore(0, 3, nil)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}
