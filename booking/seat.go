package booking

// The hall is a fixed 8x8 grid: rows A-H, columns 1-8, 64 addressable
// seats per showing.
const (
	GridRows = 8
	GridCols = 8
)

var rowLetters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// RowLetter returns the display letter for a zero-based row index.
func RowLetter(row int) string {
	if row < 0 || row >= GridRows {
		return ""
	}
	return rowLetters[row]
}

// SeatID builds the seat identifier for a zero-based row and a one-based
// column, e.g. (0, 1) -> "A1". Out-of-grid coordinates yield "".
func SeatID(row int, col int) string {
	if row < 0 || row >= GridRows || col < 1 || col > GridCols {
		return ""
	}
	return rowLetters[row] + string(rune('0'+col))
}

// AllSeats lists every seat id in display order, row by row.
func AllSeats() []string {
	seats := make([]string, 0, GridRows*GridCols)
	for row := 0; row < GridRows; row++ {
		for col := 1; col <= GridCols; col++ {
			seats = append(seats, SeatID(row, col))
		}
	}
	return seats
}

// ValidSeatID reports whether id addresses a seat on the grid.
func ValidSeatID(id string) bool {
	if len(id) != 2 {
		return false
	}
	if id[0] < 'A' || id[0] > 'H' {
		return false
	}
	return id[1] >= '1' && id[1] <= '8'
}
