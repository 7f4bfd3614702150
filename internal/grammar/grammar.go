// Package grammar recognizes the line-level constructs of a kanban block:
// section headers, list entries, column declarations and item entries.
package grammar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thenoetrevino/pasomd/internal/models"
)

// Section identifies which part of a block a line belongs to.
type Section int

const (
	SectionNone Section = iota
	SectionColumns
	SectionItems
)

// Notation is the syntax used to attach a status to an item entry.
type Notation int

const (
	// NotationNone means the entry carried no status marker.
	NotationNone Notation = iota
	// NotationBracket is "[Status] text".
	NotationBracket
	// NotationColon is "Status: text".
	NotationColon
)

var (
	columnsHeaderRe = regexp.MustCompile(`(?i)^columns:\s*(.*)$`)
	itemsHeaderRe   = regexp.MustCompile(`(?i)^items:\s*$`)
	listEntryRe     = regexp.MustCompile(`^([-*])\s+(.*)$`)
	bulletPrefixRe  = regexp.MustCompile(`^(\s*[-*]\s+)`)

	colorSuffixRe = regexp.MustCompile(`(?i)\{\s*(#(?:[0-9a-f]{8}|[0-9a-f]{6}|[0-9a-f]{3}))\s*\}\s*$`)
	wipSuffixRe   = regexp.MustCompile(`\(\s*([^()]*?)\s*\)\s*$`)
	digitsRe      = regexp.MustCompile(`^[0-9]+$`)

	bracketItemRe = regexp.MustCompile(`^\[([^\]]*)\]\s*(.*)$`)
	colonItemRe   = regexp.MustCompile(`^([^:]+):(?:\s+(.*))?$`)
)

// MatchSection reports whether a trimmed line is a section header. For an inline
// "columns: a, b" header the text after the colon is returned as inline.
func MatchSection(trimmed string) (section Section, inline string, ok bool) {
	if m := columnsHeaderRe.FindStringSubmatch(trimmed); m != nil {
		return SectionColumns, strings.TrimSpace(m[1]), true
	}
	if itemsHeaderRe.MatchString(trimmed) {
		return SectionItems, "", true
	}
	return SectionNone, "", false
}

// IsOwnLineHeader reports whether a line is a bare header of the given section,
// with nothing after the colon.
func IsOwnLineHeader(line string, section Section) bool {
	got, inline, ok := MatchSection(strings.TrimSpace(line))
	return ok && got == section && inline == ""
}

// MatchListEntry reports whether a trimmed line is a "-" or "*" list entry and
// returns the entry payload.
func MatchListEntry(trimmed string) (payload string, ok bool) {
	m := listEntryRe.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

// BulletPrefix returns the leading whitespace, bullet and following whitespace of
// a list line, or "" if the line is not a list entry.
func BulletPrefix(line string) string {
	if m := bulletPrefixRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// Indentation returns the width of the leading whitespace of a line.
func Indentation(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// IsIndented reports whether a line starts with whitespace.
func IsIndented(line string) bool {
	return Indentation(line) > 0
}

// ParseColumnDefinition splits a declaration into base name, WIP limit and color.
// Suffixes are read right to left: "{#color}" first, then "(N)". A WIP token that is
// not a non-negative integer stays part of the name.
func ParseColumnDefinition(raw string) models.ColumnDefinition {
	def := models.ColumnDefinition{RawName: strings.TrimSpace(raw)}
	rest := def.RawName

	if loc := colorSuffixRe.FindStringSubmatchIndex(rest); loc != nil {
		def.Color = strings.ToLower(rest[loc[2]:loc[3]])
		rest = strings.TrimSpace(rest[:loc[0]])
	}

	if loc := wipSuffixRe.FindStringSubmatchIndex(rest); loc != nil {
		if n, ok := parseWIPLimit(rest[loc[2]:loc[3]]); ok {
			def.WIPLimit = &n
			rest = strings.TrimSpace(rest[:loc[0]])
		}
	}

	def.BaseName = strings.TrimSpace(rest)
	if def.BaseName == "" {
		// Nothing left but suffixes; keep the whole declaration as a plain name.
		return models.ColumnDefinition{RawName: def.RawName, BaseName: def.RawName}
	}
	return def
}

func parseWIPLimit(token string) (int, bool) {
	if !digitsRe.MatchString(token) {
		return 0, false
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseItemEntry reads a list-entry payload as "[Status] text", "Status: text" or
// plain text. When the notation leaves no text the untouched payload is used instead.
func ParseItemEntry(payload string) (status, text string, notation Notation) {
	trimmed := strings.TrimSpace(payload)

	if m := bracketItemRe.FindStringSubmatch(trimmed); m != nil {
		status, text, notation = strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), NotationBracket
	} else if m := colonItemRe.FindStringSubmatch(trimmed); m != nil && strings.TrimSpace(m[1]) != "" {
		status, text, notation = strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), NotationColon
	} else {
		return "", trimmed, NotationNone
	}

	if text == "" {
		text = trimmed
	}
	return status, text, notation
}

// FormatItemLine renders the first line of an item entry in the given notation.
// A status containing a colon is always written in brackets, and one containing a
// closing bracket is always written with a colon, so the line parses back to the
// same status. A status holding both cannot be represented and keeps brackets.
func FormatItemLine(status, text string, notation Notation) string {
	colonSafe := status != "" && !strings.Contains(status, ":") && !strings.HasPrefix(status, "[")
	if colonSafe && (notation == NotationColon || strings.Contains(status, "]")) {
		return status + ": " + text
	}
	return "[" + status + "] " + text
}
