package render

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdown keeps one glamour renderer per wrap width. A TermRenderer is not safe for
// concurrent Render calls, so rendering happens under the lock.
var markdown = struct {
	sync.Mutex
	byWidth map[int]*glamour.TermRenderer
}{byWidth: map[int]*glamour.TermRenderer{}}

// CardText renders card text as Markdown. The raw text is returned if rendering fails.
func CardText(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	markdown.Lock()
	defer markdown.Unlock()

	r, ok := markdown.byWidth[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
		if err != nil {
			return text
		}
		markdown.byWidth[width] = r
	}

	rendered, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
