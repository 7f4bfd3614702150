package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/pasomd/internal/models"
)

func columnNames(b models.Board) []string {
	names := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		names = append(names, col.Name)
	}
	return names
}

func TestParse_DeclaredColumns(t *testing.T) {
	board := Parse("columns:\n  - Todo\n  - Doing (2)\nitems:\n  - [Todo] Task A\n  - Doing: Task B")

	require.Len(t, board.Columns, 2)
	assert.Equal(t, []string{"Todo", "Doing"}, columnNames(board))
	require.NotNil(t, board.Columns[1].WIPLimit)
	assert.Equal(t, 2, *board.Columns[1].WIPLimit)
	assert.Equal(t, []string{"Task A"}, board.Columns[0].Items)
	assert.Equal(t, []string{"Task B"}, board.Columns[1].Items)
}

func TestParse_Color(t *testing.T) {
	board := Parse("columns:\n  - Todo {#3b82f6}\nitems:\n  - [Todo] Task A")

	require.Len(t, board.Columns, 1)
	assert.Equal(t, "#3b82f6", board.Columns[0].Color)
	assert.Equal(t, "Todo {#3b82f6}", board.Columns[0].RawName)
	assert.Equal(t, []string{"Task A"}, board.Columns[0].Items)
}

func TestParse_CRLF(t *testing.T) {
	board := Parse("columns:\r\n  - Todo\r\n  - Done\r\nitems:\r\n  - [Done] Ship it\r\n")

	assert.Equal(t, []string{"Todo", "Done"}, columnNames(board))
	assert.Equal(t, []string{"Ship it"}, board.Columns[1].Items)
}

func TestParse_InlineColumns(t *testing.T) {
	board := Parse("columns: Todo, Doing (3), Done {#00ff00}\nitems:\n- [Done] Task")

	assert.Equal(t, []string{"Todo", "Doing", "Done"}, columnNames(board))
	require.NotNil(t, board.Columns[1].WIPLimit)
	assert.Equal(t, 3, *board.Columns[1].WIPLimit)
	assert.Equal(t, "#00ff00", board.Columns[2].Color)
	assert.Equal(t, []string{"Task"}, board.Columns[2].Items)
}

func TestParse_DuplicateColumnsFirstWins(t *testing.T) {
	board := Parse("columns:\n- Doing (3)\n- doing (5) {#ff0000}\n- Done")

	require.Len(t, board.Columns, 2)
	doing := board.Columns[0]
	assert.Equal(t, "Doing", doing.Name)
	require.NotNil(t, doing.WIPLimit)
	assert.Equal(t, 3, *doing.WIPLimit)
	// The missing color is filled in from the later declaration.
	assert.Equal(t, "#ff0000", doing.Color)
	assert.Equal(t, "Doing (3) {#ff0000}", doing.RawName)
}

func TestParse_InferredColumns(t *testing.T) {
	board := Parse("items:\n- [Doing] one\n- [Todo] two\n- [doing] three\n- plain")

	assert.Equal(t, []string{"Doing", "Todo"}, columnNames(board))
	assert.Equal(t, []string{"one", "three"}, board.Columns[0].Items)
	assert.Equal(t, []string{"two", "plain"}, board.Columns[1].Items)
}

func TestParse_InferredColumnWithSuffix(t *testing.T) {
	board := Parse("items:\n- [Doing (2)] one\n- [Doing (2)] two")

	require.Len(t, board.Columns, 1)
	col := board.Columns[0]
	assert.Equal(t, "Doing", col.Name)
	require.NotNil(t, col.WIPLimit)
	assert.Equal(t, 2, *col.WIPLimit)
	assert.Equal(t, "Doing (2)", col.StatusName)
}

func TestParse_EmptyInput(t *testing.T) {
	for _, source := range []string{"", "\n\n", "just some prose\nwith no structure"} {
		board := Parse(source)
		require.Len(t, board.Columns, 1, "source %q", source)
		assert.Equal(t, models.DefaultColumnName, board.Columns[0].Name)
		assert.Empty(t, board.Columns[0].Items)
	}
}

func TestParse_WithDefaultColumn(t *testing.T) {
	board := Parse("items:\n- no status", WithDefaultColumn("Inbox"))

	require.Len(t, board.Columns, 1)
	assert.Equal(t, "Inbox", board.Columns[0].Name)
	assert.Equal(t, []string{"no status"}, board.Columns[0].Items)
}

func TestParse_UnknownStatusGoesToDefaultColumn(t *testing.T) {
	board := Parse("columns:\n- Doing\nitems:\n- [Nope] lost\n- [Doing] found")

	assert.Equal(t, []string{"Doing", "Todo"}, columnNames(board))
	assert.Equal(t, []string{"found"}, board.Columns[0].Items)
	assert.Equal(t, []string{"lost"}, board.Columns[1].Items)
}

func TestParse_StatusMatchesByBaseName(t *testing.T) {
	board := Parse("columns:\n- Doing (2)\nitems:\n- [Doing (5)] task")

	require.Len(t, board.Columns, 1)
	assert.Equal(t, []string{"task"}, board.Columns[0].Items)
}

func TestParse_Continuation(t *testing.T) {
	source := strings.Join([]string{
		"columns:",
		"  - Todo",
		"items:",
		"  - [Todo] First line",
		"      second line",
		"      - nested bullet",
		"  - [Todo] Next item",
		"not indented is ignored",
	}, "\n")
	board := Parse(source)

	require.Len(t, board.Columns, 1)
	assert.Equal(t, []string{
		"First line\nsecond line\n- nested bullet",
		"Next item",
	}, board.Columns[0].Items)
}

func TestParse_ContinuationBeforeFirstItemIgnored(t *testing.T) {
	board := Parse("columns:\n- Todo\nitems:\n    dangling\n- [Todo] real")

	assert.Equal(t, []string{"real"}, board.Columns[0].Items)
}

func TestParse_UnrecognizedLinesIgnored(t *testing.T) {
	source := "# heading\ncolumns:\n<!-- comment -->\n- Todo\nrandom words\nitems:\n> quote\n- [Todo] kept"
	board := Parse(source)

	assert.Equal(t, []string{"Todo"}, columnNames(board))
	assert.Equal(t, []string{"kept"}, board.Columns[0].Items)
}

func TestParse_ListOutsideSectionIgnored(t *testing.T) {
	board := Parse("- stray\ncolumns:\n- Todo")

	assert.Equal(t, []string{"Todo"}, columnNames(board))
	assert.Empty(t, board.Columns[0].Items)
}

func TestParse_StatusNameHeuristic(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantStatus string
	}{
		{
			name:       "items use raw name",
			source:     "columns:\n- Doing (2)\nitems:\n- [Doing (2)] a",
			wantStatus: "Doing (2)",
		},
		{
			name:       "items use base name",
			source:     "columns:\n- Doing (2)\nitems:\n- [Doing] a",
			wantStatus: "Doing",
		},
		{
			name:       "mixed usage prefers base name",
			source:     "columns:\n- Doing (2)\nitems:\n- [Doing (2)] a\n- [Doing] b",
			wantStatus: "Doing",
		},
		{
			name:       "no items uses base name",
			source:     "columns:\n- Doing (2)",
			wantStatus: "Doing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := Parse(tt.source)
			require.NotEmpty(t, board.Columns)
			assert.Equal(t, tt.wantStatus, board.Columns[0].StatusName)
		})
	}
}

func TestParse_ItemsAppendInFirstSeenOrder(t *testing.T) {
	board := Parse("columns:\n- A\n- B\nitems:\n- [B] 1\n- [A] 2\n- [B] 3\n- [A] 4")

	assert.Equal(t, []string{"2", "4"}, board.Columns[0].Items)
	assert.Equal(t, []string{"1", "3"}, board.Columns[1].Items)
}
