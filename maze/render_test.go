package maze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diagram(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		build    func(t *testing.T) *Maze
		expected string
	}{
		{
			name: "New 3x3",
			build: func(t *testing.T) *Maze {
				m, err := New(3, 3)
				require.NoError(t, err)
				return m
			},
			expected: diagram(
				"┌───┬───┬───┐",
				"│   │   │   │",
				"├───┼───┼───┤",
				"│   │   │   │",
				"├───┼───┼───┤",
				"│   │   │   │",
				"└───┴───┴───┘",
			),
		},
		{
			name: "Open north wall",
			build: func(t *testing.T) *Maze {
				m, _ := New(3, 3)
				it := NewCellIterator(m)
				cell, _ := it.Next()
				require.NoError(t, m.OpenNorth(cell))
				return m
			},
			expected: diagram(
				"┌───┬───┬───┐",
				"│   │   │   │",
				"├───┼───┼───┤",
				"│   │   │   │",
				"│   ├───┼───┤",
				"│   │   │   │",
				"└───┴───┴───┘",
			),
		},
		{
			name: "Open east wall",
			build: func(t *testing.T) *Maze {
				m, _ := New(3, 3)
				it := NewCellIterator(m)
				cell, _ := it.Next()
				require.NoError(t, m.OpenEast(cell))
				return m
			},
			expected: diagram(
				"┌───┬───┬───┐",
				"│   │   │   │",
				"├───┼───┼───┤",
				"│   │   │   │",
				"├───┴───┼───┤",
				"│       │   │",
				"└───────┴───┘",
			),
		},
		{
			name: "Next cell open north wall",
			build: func(t *testing.T) *Maze {
				m, _ := New(3, 3)
				it := NewCellIterator(m)
				it.Next() // skip the first cell
				cell, _ := it.Next()
				require.NoError(t, m.OpenNorth(cell))
				return m
			},
			expected: diagram(
				"┌───┬───┬───┐",
				"│   │   │   │",
				"├───┼───┼───┤",
				"│   │   │   │",
				"├───┤   ├───┤",
				"│   │   │   │",
				"└───┴───┴───┘",
			),
		},
		{
			name: "Binary tree all true",
			build: func(t *testing.T) *Maze {
				m, err := BinaryTreeWith(3, 3, SourceFunc{BoolFn: constBool(true)})
				require.NoError(t, err)
				return m
			},
			expected: diagram(
				"┌───────────┐",
				"│           │",
				"│   ╷   ╷   │",
				"│   │   │   │",
				"│   │   │   │",
				"│   │   │   │",
				"└───┴───┴───┘",
			),
		},
		{
			name: "Binary tree all false",
			build: func(t *testing.T) *Maze {
				m, err := BinaryTreeWith(3, 3, SourceFunc{BoolFn: constBool(false)})
				require.NoError(t, err)
				return m
			},
			expected: diagram(
				"┌───────────┐",
				"│           │",
				"├───────╴   │",
				"│           │",
				"├───────╴   │",
				"│           │",
				"└───────────┘",
			),
		},
		{
			name: "Sidewinder alternating bool with index 0",
			build: func(t *testing.T) *Maze {
				return sidewinderAlternating(t, 0)
			},
			expected: diagram(
				"┌───────┬───┐",
				"│       │   │",
				"│   ╷   └───┤",
				"│   │       │",
				"│   └───┐   │",
				"│       │   │",
				"└───────┴───┘",
			),
		},
		{
			name: "Sidewinder alternating bool with index 1",
			build: func(t *testing.T) *Maze {
				return sidewinderAlternating(t, 1)
			},
			expected: diagram(
				"┌───────────┐",
				"│           │",
				"│   ┌───╴   │",
				"│   │       │",
				"├───┘   ╷   │",
				"│       │   │",
				"└───────┴───┘",
			),
		},
		{
			name: "Single cell",
			build: func(t *testing.T) *Maze {
				m, _ := New(1, 1)
				return m
			},
			expected: diagram(
				"┌───┐",
				"│   │",
				"└───┘",
			),
		},
		{
			name: "Single row carved east",
			build: func(t *testing.T) *Maze {
				m, err := BinaryTreeWith(3, 1, SourceFunc{BoolFn: constBool(true)})
				require.NoError(t, err)
				return m
			},
			expected: diagram(
				"┌───────────┐",
				"│           │",
				"└───────────┘",
			),
		},
		{
			name: "Single column carved north",
			build: func(t *testing.T) *Maze {
				m, err := BinaryTreeWith(1, 2, SourceFunc{BoolFn: constBool(false)})
				require.NoError(t, err)
				return m
			},
			expected: diagram(
				"┌───┐",
				"│   │",
				"│   │",
				"│   │",
				"└───┘",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.build(t)
			assert.Equal(t, tt.expected, m.String())
		})
	}
}

func TestStringShape(t *testing.T) {
	m, err := SidewinderWith(7, 4, NewUniformSource(3, DefaultBias))
	require.NoError(t, err)

	out := m.String()
	assert.False(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2*4+1)
	for _, line := range lines {
		assert.Equal(t, 4*7+1, len([]rune(line)))
	}
}
