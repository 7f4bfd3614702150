package modelops

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/pasomd/internal/models"
)

func testBoard() models.Board {
	todo := models.NewColumn("Todo", nil, "")
	todo.Items = []string{"a", "b", "c"}
	doing := models.NewColumn("Doing", nil, "")
	doing.Items = []string{"d"}
	done := models.NewColumn("Done", nil, "")
	return models.Board{Columns: []models.Column{todo, doing, done}}
}

func items(b models.Board) [][]string {
	out := make([][]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		out = append(out, col.Items)
	}
	return out
}

func names(b models.Board) []string {
	out := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		out = append(out, col.Name)
	}
	return out
}

func TestMoveCard(t *testing.T) {
	tests := []struct {
		name                             string
		fromCol, fromItem, toCol, toItem int
		want                             [][]string
	}{
		{
			name:    "across columns to front",
			fromCol: 0, fromItem: 1, toCol: 1, toItem: 0,
			want: [][]string{{"a", "c"}, {"b", "d"}, {}},
		},
		{
			name:    "across columns to end",
			fromCol: 0, fromItem: 0, toCol: 1, toItem: 1,
			want: [][]string{{"b", "c"}, {"d", "a"}, {}},
		},
		{
			name:    "into empty column",
			fromCol: 1, fromItem: 0, toCol: 2, toItem: 0,
			want: [][]string{{"a", "b", "c"}, {}, {"d"}},
		},
		{
			name:    "target index past end is clamped",
			fromCol: 0, fromItem: 0, toCol: 2, toItem: 99,
			want: [][]string{{"b", "c"}, {"d"}, {"a"}},
		},
		{
			name:    "negative target index is clamped",
			fromCol: 0, fromItem: 2, toCol: 1, toItem: -4,
			want: [][]string{{"a", "b"}, {"c", "d"}, {}},
		},
		{
			name:    "same column downward compensates for removal",
			fromCol: 0, fromItem: 0, toCol: 0, toItem: 2,
			want: [][]string{{"b", "a", "c"}, {"d"}, {}},
		},
		{
			name:    "same column to end",
			fromCol: 0, fromItem: 0, toCol: 0, toItem: 3,
			want: [][]string{{"b", "c", "a"}, {"d"}, {}},
		},
		{
			name:    "same column upward",
			fromCol: 0, fromItem: 2, toCol: 0, toItem: 0,
			want: [][]string{{"c", "a", "b"}, {"d"}, {}},
		},
		{
			name:    "drop onto itself",
			fromCol: 0, fromItem: 1, toCol: 0, toItem: 1,
			want: [][]string{{"a", "b", "c"}, {"d"}, {}},
		},
		{
			name:    "source column out of range",
			fromCol: 5, fromItem: 0, toCol: 0, toItem: 0,
			want: [][]string{{"a", "b", "c"}, {"d"}, {}},
		},
		{
			name:    "target column out of range",
			fromCol: 0, fromItem: 0, toCol: -1, toItem: 0,
			want: [][]string{{"a", "b", "c"}, {"d"}, {}},
		},
		{
			name:    "source item out of range",
			fromCol: 2, fromItem: 0, toCol: 0, toItem: 0,
			want: [][]string{{"a", "b", "c"}, {"d"}, {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testBoard()
			got := MoveCard(board, tt.fromCol, tt.fromItem, tt.toCol, tt.toItem)
			if diff := cmp.Diff(tt.want, items(got)); diff != "" {
				t.Errorf("MoveCard() items mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, board.ItemCount(), got.ItemCount())
		})
	}
}

func TestMoveCard_DoesNotModifyInput(t *testing.T) {
	board := testBoard()
	before := testBoard()

	_ = MoveCard(board, 0, 0, 1, 0)

	if diff := cmp.Diff(items(before), items(board)); diff != "" {
		t.Errorf("input board was modified (-before +after):\n%s", diff)
	}
}

func TestCardDestination(t *testing.T) {
	board := testBoard()

	col, item, ok := CardDestination(board, 0, 0, 0, 3)
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 2, item)

	col, item, ok = CardDestination(board, 0, 0, 1, 10)
	assert.True(t, ok)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, item)

	_, _, ok = CardDestination(board, 2, 0, 0, 0)
	assert.False(t, ok)
}

func TestColumnDestination(t *testing.T) {
	board := testBoard()

	to, ok := ColumnDestination(board, 0, 3)
	assert.True(t, ok)
	assert.Equal(t, 2, to)

	to, ok = ColumnDestination(board, 1, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, to)

	_, ok = ColumnDestination(board, 3, 0)
	assert.False(t, ok)
}

func TestMoveColumn(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{name: "first to end", from: 0, to: 3, want: []string{"Doing", "Done", "Todo"}},
		{name: "first before last", from: 0, to: 2, want: []string{"Doing", "Todo", "Done"}},
		{name: "last to front", from: 2, to: 0, want: []string{"Done", "Todo", "Doing"}},
		{name: "middle to front", from: 1, to: 0, want: []string{"Doing", "Todo", "Done"}},
		{name: "onto itself", from: 1, to: 1, want: []string{"Todo", "Doing", "Done"}},
		{name: "just after itself", from: 1, to: 2, want: []string{"Todo", "Doing", "Done"}},
		{name: "target past end is clamped", from: 0, to: 42, want: []string{"Doing", "Done", "Todo"}},
		{name: "negative target is clamped", from: 2, to: -3, want: []string{"Done", "Todo", "Doing"}},
		{name: "source out of range", from: 3, to: 0, want: []string{"Todo", "Doing", "Done"}},
		{name: "negative source", from: -1, to: 0, want: []string{"Todo", "Doing", "Done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testBoard()
			got := MoveColumn(board, tt.from, tt.to)
			assert.Equal(t, tt.want, names(got))
			assert.Len(t, got.Columns, len(board.Columns))
			assert.Equal(t, board.ItemCount(), got.ItemCount())
		})
	}
}

func TestMoveColumn_KeepsItemsWithColumn(t *testing.T) {
	got := MoveColumn(testBoard(), 0, 3)

	assert.Equal(t, "Todo", got.Columns[2].Name)
	assert.Equal(t, []string{"a", "b", "c"}, got.Columns[2].Items)
}

func TestMoveSequencePreservesCounts(t *testing.T) {
	board := testBoard()
	total := board.ItemCount()

	moves := [][4]int{{0, 0, 2, 0}, {0, 1, 0, 0}, {2, 0, 1, 5}, {1, 1, 1, 0}, {9, 9, 9, 9}, {1, 0, 0, 2}}
	for _, m := range moves {
		board = MoveCard(board, m[0], m[1], m[2], m[3])
		assert.Equal(t, total, board.ItemCount())
	}

	for _, m := range [][2]int{{0, 3}, {2, 0}, {1, 1}, {5, 0}, {0, 2}} {
		board = MoveColumn(board, m[0], m[1])
		assert.Len(t, board.Columns, 3)
		assert.Equal(t, total, board.ItemCount())
	}
}
