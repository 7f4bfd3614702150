// Package parser turns the text of a kanban block into a models.Board.
//
// Parsing is total: any input, however malformed, yields a board. Lines that
// match nothing are ignored.
package parser

import (
	"strings"

	"github.com/thenoetrevino/pasomd/internal/grammar"
	"github.com/thenoetrevino/pasomd/internal/models"
)

// Options controls parsing behaviour.
type Options struct {
	// DefaultColumn receives items without a status and is the only column of an empty board.
	DefaultColumn string
}

// Option configures Options.
type Option func(*Options)

// WithDefaultColumn overrides the column name used for items without a status.
func WithDefaultColumn(name string) Option {
	return func(o *Options) {
		if strings.TrimSpace(name) != "" {
			o.DefaultColumn = strings.TrimSpace(name)
		}
	}
}

// harvest is what a single scan over the block collects before resolution.
type harvest struct {
	definitions []models.ColumnDefinition
	items       []models.Item
}

// scanner walks the block line by line. Its section field is the state of a
// small state machine driven by header lines.
type scanner struct {
	opts      Options
	section   grammar.Section
	out       harvest
	lastItem  int // index into out.items, -1 before the first item
	lastDepth int // indentation of the list line that started lastItem
}

// Parse parses block text into a board.
func Parse(source string, opts ...Option) models.Board {
	o := Options{DefaultColumn: models.DefaultColumnName}
	for _, opt := range opts {
		opt(&o)
	}
	return ParseLines(SplitLines(source), o)
}

// ParseLines parses already split block lines.
func ParseLines(lines []string, opts Options) models.Board {
	if opts.DefaultColumn == "" {
		opts.DefaultColumn = models.DefaultColumnName
	}
	s := &scanner{opts: opts, lastItem: -1}
	for _, line := range lines {
		s.feed(strings.TrimRight(line, "\r"))
	}
	return resolve(s.out, opts.DefaultColumn)
}

// SplitLines splits text on "\n" or "\r\n".
func SplitLines(source string) []string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (s *scanner) feed(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	if s.isContinuation(line, trimmed) {
		item := &s.out.items[s.lastItem]
		item.Text += "\n" + trimmed
		return
	}

	if section, inline, ok := grammar.MatchSection(trimmed); ok {
		s.section = section
		if section == grammar.SectionColumns && inline != "" {
			s.addInlineColumns(inline)
		}
		return
	}

	payload, ok := grammar.MatchListEntry(trimmed)
	if !ok {
		return
	}

	switch s.section {
	case grammar.SectionColumns:
		s.addColumn(payload)
	case grammar.SectionItems:
		s.addItem(payload, grammar.Indentation(line))
	}
}

func (s *scanner) isContinuation(line, trimmed string) bool {
	if s.section != grammar.SectionItems || s.lastItem < 0 || !grammar.IsIndented(line) {
		return false
	}
	if _, isEntry := grammar.MatchListEntry(trimmed); isEntry {
		// A sibling entry starts a new item; a deeper one belongs to the current item.
		return grammar.Indentation(line) > s.lastDepth
	}
	return true
}

func (s *scanner) addInlineColumns(inline string) {
	for _, piece := range strings.Split(inline, ",") {
		s.addColumn(piece)
	}
}

func (s *scanner) addColumn(decl string) {
	def := grammar.ParseColumnDefinition(decl)
	if def.BaseName == "" {
		return
	}
	s.out.definitions = append(s.out.definitions, def)
}

func (s *scanner) addItem(payload string, depth int) {
	status, text, _ := grammar.ParseItemEntry(payload)
	if status == "" {
		status = s.opts.DefaultColumn
	}
	s.out.items = append(s.out.items, models.Item{Status: status, Text: text})
	s.lastItem = len(s.out.items) - 1
	s.lastDepth = depth
}
