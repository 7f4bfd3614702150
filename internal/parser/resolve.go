package parser

import (
	"strings"

	"github.com/thenoetrevino/pasomd/internal/grammar"
	"github.com/thenoetrevino/pasomd/internal/models"
)

// statusCounts tracks how items referred to a column: by its full declaration
// text or by its bare name.
type statusCounts struct {
	raw  int
	base int
}

// resolver assembles a board from harvested definitions and items.
type resolver struct {
	defaultColumn string
	columns       []models.Column
	index         map[string]int // normalized key -> position in columns
	counts        []statusCounts
}

func resolve(h harvest, defaultColumn string) models.Board {
	r := &resolver{defaultColumn: defaultColumn, index: make(map[string]int)}

	for _, def := range h.definitions {
		r.define(def)
	}

	if len(r.columns) == 0 {
		for _, item := range h.items {
			if r.lookup(item.Status) < 0 {
				r.define(grammar.ParseColumnDefinition(item.Status))
			}
		}
	}

	if len(r.columns) == 0 {
		r.define(models.ColumnDefinition{RawName: defaultColumn, BaseName: defaultColumn})
	}

	for _, item := range h.items {
		r.place(item)
	}

	for i := range r.columns {
		col := &r.columns[i]
		if r.counts[i].raw > 0 && r.counts[i].base == 0 {
			col.StatusName = col.RawName
		} else {
			col.StatusName = col.Name
		}
	}

	return models.Board{Columns: r.columns}
}

// define gets or creates the column for a definition. A repeated declaration only
// fills fields the first one left unset.
func (r *resolver) define(def models.ColumnDefinition) int {
	key := models.NormalizeKey(def.BaseName)
	if i, ok := r.index[key]; ok {
		col := &r.columns[i]
		filled := false
		if col.WIPLimit == nil && def.WIPLimit != nil {
			n := *def.WIPLimit
			col.WIPLimit = &n
			filled = true
		}
		if col.Color == "" && def.Color != "" {
			col.Color = def.Color
			filled = true
		}
		if col.Name == "" {
			col.Name = def.BaseName
			filled = true
		}
		if filled {
			col.RawName = models.BuildRawName(col.Name, col.WIPLimit, col.Color)
		}
		return i
	}

	r.columns = append(r.columns, models.ColumnFromDefinition(def))
	r.counts = append(r.counts, statusCounts{})
	r.index[key] = len(r.columns) - 1
	return len(r.columns) - 1
}

// lookup finds the column an item status refers to, either by the status as a
// whole or by the base name left after stripping declaration suffixes.
func (r *resolver) lookup(status string) int {
	if i, ok := r.index[models.NormalizeKey(status)]; ok {
		return i
	}
	def := grammar.ParseColumnDefinition(status)
	if i, ok := r.index[models.NormalizeKey(def.BaseName)]; ok {
		return i
	}
	return -1
}

func (r *resolver) place(item models.Item) {
	i := r.lookup(item.Status)
	if i < 0 {
		i = r.lookup(r.defaultColumn)
		if i < 0 {
			i = r.define(models.ColumnDefinition{RawName: r.defaultColumn, BaseName: r.defaultColumn})
		}
	}

	col := &r.columns[i]
	col.Items = append(col.Items, item.Text)

	status := strings.TrimSpace(item.Status)
	if strings.EqualFold(status, col.RawName) {
		r.counts[i].raw++
	}
	if strings.EqualFold(status, col.Name) {
		r.counts[i].base++
	}
}
