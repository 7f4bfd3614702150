// Package document locates kanban blocks inside Markdown documents and reads and
// writes whole documents.
package document

import (
	"strconv"
	"strings"
)

// Document is a text document split into lines.
type Document struct {
	Lines []string
	EOL   string // "\n" or "\r\n", used when joining Lines back together
}

// Block is a fenced kanban region of a document.
type Block struct {
	Index     int      // Position among the document's kanban blocks
	Language  string   // Info string word that marked the fence
	StartLine int      // Line of the opening fence
	EndLine   int      // Line of the closing fence, len(Lines) when the fence is unterminated
	Lines     []string // Content between the fences
}

// ID returns the identity of a block within a document, used to key per-block state.
func ID(path string, index int) string {
	return path + "#" + strconv.Itoa(index)
}

// Parse splits text into a Document. The line ending of the first line break
// decides the EOL used when the document is written back.
func Parse(text string) Document {
	eol := "\n"
	if i := strings.Index(text, "\n"); i > 0 && text[i-1] == '\r' {
		eol = "\r\n"
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return Document{Lines: lines, EOL: eol}
}

// String joins the document back into text.
func (d Document) String() string {
	return strings.Join(d.Lines, d.EOL)
}

// Blocks returns the document's kanban blocks in order. A fence is a kanban block
// when the first word of its info string matches one of langs, case-insensitively.
func (d Document) Blocks(langs []string) []Block {
	var blocks []Block
	for i := 0; i < len(d.Lines); i++ {
		open, ok := parseFence(d.Lines[i])
		if !ok {
			continue
		}

		end := len(d.Lines)
		for j := i + 1; j < len(d.Lines); j++ {
			if closesFence(d.Lines[j], open) {
				end = j
				break
			}
		}

		lang := infoLanguage(open.info)
		if matchesLanguage(lang, langs) {
			blocks = append(blocks, Block{
				Index:     len(blocks),
				Language:  lang,
				StartLine: i,
				EndLine:   end,
				Lines:     append([]string{}, d.Lines[i+1:end]...),
			})
		}
		i = end
	}
	return blocks
}

// Block returns the block at index, or false if the document has fewer blocks.
func (d Document) Block(langs []string, index int) (Block, bool) {
	blocks := d.Blocks(langs)
	if index < 0 || index >= len(blocks) {
		return Block{}, false
	}
	return blocks[index], true
}

// Splice returns a copy of the document with the content of b replaced by content.
// The fence lines themselves are kept.
func (d Document) Splice(b Block, content []string) Document {
	out := make([]string, 0, len(d.Lines)-len(b.Lines)+len(content))
	out = append(out, d.Lines[:b.StartLine+1]...)
	out = append(out, content...)
	out = append(out, d.Lines[b.EndLine:]...)
	return Document{Lines: out, EOL: d.EOL}
}

type fence struct {
	char   byte
	length int
	info   string
}

// parseFence recognizes an opening code fence: up to three spaces of indentation,
// then three or more backticks or tildes.
func parseFence(line string) (fence, bool) {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	if indent > 3 {
		return fence{}, false
	}
	rest := line[indent:]
	if len(rest) < 3 || (rest[0] != '`' && rest[0] != '~') {
		return fence{}, false
	}
	char := rest[0]
	n := 0
	for n < len(rest) && rest[n] == char {
		n++
	}
	if n < 3 {
		return fence{}, false
	}
	info := strings.TrimSpace(rest[n:])
	if char == '`' && strings.Contains(info, "`") {
		return fence{}, false
	}
	return fence{char: char, length: n, info: info}, true
}

func closesFence(line string, open fence) bool {
	f, ok := parseFence(line)
	return ok && f.char == open.char && f.length >= open.length && f.info == ""
}

func infoLanguage(info string) string {
	if fields := strings.Fields(info); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

func matchesLanguage(lang string, langs []string) bool {
	for _, l := range langs {
		if strings.EqualFold(lang, l) {
			return true
		}
	}
	return false
}
