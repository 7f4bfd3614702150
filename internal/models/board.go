package models

// Board is the in-memory model of one kanban block.
// Boards are treated as values: mutation operations return a new Board and leave
// the previous one intact so it can still be compared against the original text.
type Board struct {
	Columns []Column `json:"columns"`
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{Columns: make([]Column, len(b.Columns))}
	for i, col := range b.Columns {
		out.Columns[i] = col.Clone()
	}
	return out
}

// ColumnIndex returns the index of the column whose key matches name, or -1.
func (b Board) ColumnIndex(name string) int {
	key := NormalizeKey(name)
	for i, col := range b.Columns {
		if col.Key() == key {
			return i
		}
	}
	return -1
}

// ItemCount returns the number of items across all columns.
func (b Board) ItemCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Items)
	}
	return n
}

// Item is a parsed item entry before it is placed into a column.
type Item struct {
	Status string
	Text   string
}
