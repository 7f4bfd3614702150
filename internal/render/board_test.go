package render

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/pasomd/internal/config"
	"github.com/thenoetrevino/pasomd/internal/models"
)

func intPtr(n int) *int { return &n }

func testOptions() Options {
	return Options{Styles: NewStyles(config.DefaultColorScheme()), ColumnWidth: 24}
}

func TestBoard_RendersColumnsAndCards(t *testing.T) {
	todo := models.NewColumn("Todo", nil, "")
	todo.Items = []string{"Write docs", "Review"}
	doing := models.NewColumn("Doing", intPtr(3), "#3b82f6")
	doing.Items = []string{"Fix parser"}

	out := Board(models.Board{Columns: []models.Column{todo, doing}}, testOptions())

	for _, want := range []string{"Todo", "Doing", "Write docs", "Review", "Fix parser", "(2)", "1/3"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "┏", "nothing is highlighted")
}

func TestBoard_Empty(t *testing.T) {
	assert.Contains(t, Board(models.Board{}, testOptions()), "No columns")
}

func TestColumn_WIPExceeded(t *testing.T) {
	col := models.NewColumn("Doing", intPtr(1), "")
	col.Items = []string{"a", "b"}

	assert.Contains(t, Column(col, -1, testOptions()), "2/1 !")
}

func TestColumn_NoCards(t *testing.T) {
	out := Column(models.NewColumn("Done", nil, ""), -1, testOptions())
	assert.Contains(t, out, "No cards")
	assert.Contains(t, out, "(0)")
}

func TestColumn_OffsetAndMaxItems(t *testing.T) {
	col := models.NewColumn("Todo", nil, "")
	col.Items = []string{"c0", "c1", "c2", "c3", "c4"}

	opts := testOptions()
	opts.Offset = 1
	opts.MaxItems = 2
	out := Column(col, -1, opts)

	assert.Contains(t, out, "▲ 1 more")
	assert.Contains(t, out, "▼ 2 more")
	assert.Contains(t, out, "c1")
	assert.Contains(t, out, "c2")
	assert.NotContains(t, out, "c0")
	assert.NotContains(t, out, "c3")
}

func TestColumn_OffsetPastEnd(t *testing.T) {
	col := models.NewColumn("Todo", nil, "")
	col.Items = []string{"only"}

	opts := testOptions()
	opts.Offset = 10
	out := Column(col, -1, opts)
	assert.Contains(t, out, "▲ 1 more")
	assert.NotContains(t, out, "only")
}

func TestBoard_Highlight(t *testing.T) {
	todo := models.NewColumn("Todo", nil, "")
	todo.Items = []string{"first", "second"}

	opts := testOptions()
	opts.Highlight = &Highlight{Column: 0, Item: 1}
	out := Board(models.Board{Columns: []models.Column{todo}}, opts)

	assert.Equal(t, 1, strings.Count(out, "┏"), "exactly one card is highlighted")
}

func TestCardText(t *testing.T) {
	assert.Equal(t, "", CardText("", 20))

	out := CardText("**bold** text", 20)
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "text")
	assert.Equal(t, strings.TrimSpace(out), out)
}

func TestCardText_ReusesRendererPerWidth(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			CardText("some *card*", 33)
		}()
	}
	wg.Wait()

	markdown.Lock()
	defer markdown.Unlock()
	assert.Contains(t, markdown.byWidth, 33)
}
