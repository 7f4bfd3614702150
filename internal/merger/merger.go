// Package merger writes a board back into the text of its block.
//
// Merge patches only the column list and the item list of the original lines.
// Everything outside those two ranges (comments, blank lines, header wording,
// text around the headers) is copied through unchanged. When the block does not
// have the expected "columns:" then "items:" layout, Merge falls back to
// Serialize and regenerates the whole block.
package merger

import (
	"strings"

	"github.com/thenoetrevino/pasomd/internal/grammar"
	"github.com/thenoetrevino/pasomd/internal/models"
)

const (
	defaultBullet = "- "
	defaultIndent = "  "
)

// span is a half-open range [start, end) of section lines to replace.
// start == end is an insertion point.
type span struct {
	start, end int
	found      bool // whether the section already had list lines
}

// Merge returns the block lines for board, reusing original wherever possible.
func Merge(original []string, board models.Board) []string {
	colHeader, itemsHeader := findHeaders(original)
	if colHeader < 0 || itemsHeader < 0 || colHeader >= itemsHeader {
		return Serialize(board)
	}

	colSection := original[colHeader+1 : itemsHeader]
	itemsSection := original[itemsHeader+1:]

	colSpan := listSpan(colSection)
	colPrefix := bulletPrefix(colSection, colSpan, original[colHeader])
	colLines := columnLines(board, colPrefix)

	itemsSpan := listSpan(itemsSection)
	itemsPrefix := bulletPrefix(itemsSection, itemsSpan, original[itemsHeader])
	itemLines := itemLines(board, itemsPrefix, detectNotation(itemsSection))

	out := make([]string, 0, len(original)+len(colLines)+len(itemLines))
	out = append(out, original[:colHeader+1]...)
	out = splice(out, colSection, colSpan, colLines)
	out = append(out, original[itemsHeader])
	out = splice(out, itemsSection, itemsSpan, itemLines)
	return out
}

// Serialize renders board as a canonical block.
func Serialize(board models.Board) []string {
	prefix := defaultIndent + defaultBullet
	out := []string{"columns:"}
	out = append(out, columnLines(board, prefix)...)
	out = append(out, "items:")
	out = append(out, itemLines(board, prefix, grammar.NotationBracket)...)
	return out
}

// findHeaders locates the first own-line "columns:" and "items:" headers.
func findHeaders(lines []string) (columns, items int) {
	columns, items = -1, -1
	for i, line := range lines {
		switch {
		case columns < 0 && grammar.IsOwnLineHeader(line, grammar.SectionColumns):
			columns = i
		case items < 0 && grammar.IsOwnLineHeader(line, grammar.SectionItems):
			items = i
		}
	}
	return columns, items
}

// listSpan finds the range covering the first through the last list entry of a
// section, plus any indented lines attached to the last entry. Blank lines that
// trail the attached run are left outside the range.
func listSpan(section []string) span {
	first, last := -1, -1
	for i, line := range section {
		if isListLine(line) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return span{}
	}

	end := last + 1
	for end < len(section) && (isBlank(section[end]) || grammar.IsIndented(section[end])) {
		end++
	}
	for end > last+1 && isBlank(section[end-1]) {
		end--
	}
	return span{start: first, end: end, found: true}
}

// bulletPrefix reuses the bullet style of the first existing list line, or
// derives one from the header's indentation.
func bulletPrefix(section []string, s span, header string) string {
	if s.found {
		if prefix := grammar.BulletPrefix(section[s.start]); prefix != "" {
			return prefix
		}
	}
	lead := header[:grammar.Indentation(header)]
	return lead + defaultIndent + defaultBullet
}

// detectNotation returns the notation of the first existing item entry that uses
// one, defaulting to brackets.
func detectNotation(section []string) grammar.Notation {
	for _, line := range section {
		payload, ok := grammar.MatchListEntry(strings.TrimSpace(line))
		if !ok {
			continue
		}
		if _, _, notation := grammar.ParseItemEntry(payload); notation != grammar.NotationNone {
			return notation
		}
	}
	return grammar.NotationBracket
}

func columnLines(board models.Board, prefix string) []string {
	out := make([]string, 0, len(board.Columns))
	for _, col := range board.Columns {
		out = append(out, prefix+col.RawName)
	}
	return out
}

func itemLines(board models.Board, prefix string, notation grammar.Notation) []string {
	indent := strings.Repeat(" ", len(prefix))
	var out []string
	for _, col := range board.Columns {
		for _, text := range col.Items {
			if strings.TrimSpace(text) == "" {
				continue
			}
			lines := strings.Split(strings.TrimSpace(text), "\n")
			out = append(out, prefix+grammar.FormatItemLine(col.StatusName, strings.TrimSpace(lines[0]), notation))
			for _, cont := range lines[1:] {
				cont = strings.TrimSpace(cont)
				if cont == "" {
					continue
				}
				out = append(out, indent+cont)
			}
		}
	}
	return out
}

// splice appends section to out with the span replaced by replacement.
func splice(out, section []string, s span, replacement []string) []string {
	out = append(out, section[:s.start]...)
	out = append(out, replacement...)
	return append(out, section[s.end:]...)
}

func isListLine(line string) bool {
	_, ok := grammar.MatchListEntry(strings.TrimSpace(line))
	return ok
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
