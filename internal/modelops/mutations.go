// Package modelops holds the pure board transforms invoked after a user gesture.
// Every operation works on a clone and returns it; the input board is never modified.
// Out-of-range indices make an operation a no-op rather than an error.
package modelops

import "github.com/thenoetrevino/pasomd/internal/models"

// CardDestination resolves where a card will land after MoveCard with the same
// arguments. ok is false when the move is a no-op.
func CardDestination(board models.Board, fromCol, fromItem, toCol, toItem int) (col, item int, ok bool) {
	if !validIndex(fromCol, len(board.Columns)) || !validIndex(toCol, len(board.Columns)) {
		return 0, 0, false
	}
	if !validIndex(fromItem, len(board.Columns[fromCol].Items)) {
		return 0, 0, false
	}

	// Length of the target column once the card has been taken out.
	targetLen := len(board.Columns[toCol].Items)
	if fromCol == toCol {
		targetLen--
		if fromItem < toItem {
			toItem--
		}
	}
	return toCol, clamp(toItem, 0, targetLen), true
}

// MoveCard moves the item at (fromCol, fromItem) so that it ends up at index toItem
// of column toCol.
func MoveCard(board models.Board, fromCol, fromItem, toCol, toItem int) models.Board {
	col, at, ok := CardDestination(board, fromCol, fromItem, toCol, toItem)
	if !ok {
		return board
	}

	next := board.Clone()
	source := &next.Columns[fromCol]
	text := source.Items[fromItem]
	source.Items = append(source.Items[:fromItem], source.Items[fromItem+1:]...)

	target := &next.Columns[col]
	target.Items = insert(target.Items, at, text)
	return next
}

// ColumnDestination resolves the index a column will occupy after MoveColumn with
// the same arguments. ok is false when fromIndex is out of range.
func ColumnDestination(board models.Board, fromIndex, toIndex int) (int, bool) {
	n := len(board.Columns)
	if !validIndex(fromIndex, n) {
		return 0, false
	}
	toIndex = clamp(toIndex, 0, n)
	if toIndex > fromIndex {
		toIndex--
	}
	return toIndex, true
}

// MoveColumn moves the column at fromIndex so that it is inserted before the column
// currently at toIndex; toIndex == len(columns) moves it to the end.
func MoveColumn(board models.Board, fromIndex, toIndex int) models.Board {
	toIndex, ok := ColumnDestination(board, fromIndex, toIndex)
	if !ok {
		return board
	}

	n := len(board.Columns)
	next := board.Clone()
	col := next.Columns[fromIndex]
	rest := append(next.Columns[:fromIndex:fromIndex], next.Columns[fromIndex+1:]...)

	out := make([]models.Column, 0, n)
	out = append(out, rest[:toIndex]...)
	out = append(out, col)
	out = append(out, rest[toIndex:]...)
	next.Columns = out
	return next
}

func insert(items []string, at int, text string) []string {
	out := make([]string, 0, len(items)+1)
	out = append(out, items[:at]...)
	out = append(out, text)
	return append(out, items[at:]...)
}

func validIndex(i, n int) bool {
	return i >= 0 && i < n
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
