package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Notation:
// - Columns: 1-7 (or a-g) from the left
// - Heights: 1-6 from the bottom of the board
// - Example: d1 is the bottom cell of the middle column
//
// Board coordinates:
// - col: 0-6 (left to right)
// - row: 0-5 (top to bottom)
// - Example: (5, 3) for d1

// ColumnLabel returns the 1-based label shown above col.
func ColumnLabel(col int) string {
	return strconv.Itoa(col + 1)
}

// PosLabel converts board coordinates to notation.
// (5, 0) -> a1, (0, 6) -> g6
func PosLabel(row, col int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(col), Height-row)
}

// ParseColumn converts "1".."7" or "a".."g" to a column index.
func ParseColumn(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 1 {
		return 0, errors.Errorf("invalid column: %q", s)
	}

	var col int
	switch ch := s[0]; {
	case ch >= '1' && ch <= '9':
		col = int(ch - '1')
	case ch >= 'a' && ch <= 'z':
		col = int(ch - 'a')
	default:
		return 0, errors.Errorf("invalid column: %q", s)
	}

	if col >= Width {
		return 0, errors.Errorf("column out of bounds: %q", s)
	}
	return col, nil
}
