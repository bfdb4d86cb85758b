package native

import (
	"strconv"
	"strings"
)

// TextBox is a dynamic multi-line text field. Positions use the
// toolkit's "line.char" addressing with 1-based lines, plus the "end"
// sentinel for the position past the last character.
type TextBox struct {
	baseWidget

	content   string
	width     int
	height    int
	scrollbar bool
}

// NewTextBox creates a text box owned by parent holding content.
func NewTextBox(parent Handle, content string, width, height int) *TextBox {
	t := &TextBox{content: content, width: width, height: height}
	t.parent = parent
	attach(parent, t)
	return t
}

func (t *TextBox) Kind() string { return "textbox" }

// Text returns the full contents.
func (t *TextBox) Text() string { return t.content }

// AttachScrollbar marks the box as having a vertical scrollbar.
func (t *TextBox) AttachScrollbar() { t.scrollbar = true }

// HasScrollbar reports whether a scrollbar is attached.
func (t *TextBox) HasScrollbar() bool { return t.scrollbar }

// resolveIndex turns a "line.char" or "end" position into a byte
// offset, clamped into the contents. Unparseable positions resolve to
// the start, matching the tolerant indexing of the underlying toolkit.
func (t *TextBox) resolveIndex(index string) int {
	if index == "end" {
		return len(t.content)
	}
	line, char, ok := strings.Cut(index, ".")
	if !ok {
		return 0
	}
	lineNum, err := strconv.Atoi(line)
	if err != nil || lineNum < 1 {
		return 0
	}
	charNum, err := strconv.Atoi(char)
	if err != nil || charNum < 0 {
		charNum = 0
	}
	offset := 0
	for n := 1; n < lineNum; n++ {
		next := strings.IndexByte(t.content[offset:], '\n')
		if next < 0 {
			return len(t.content)
		}
		offset += next + 1
	}
	if offset+charNum > len(t.content) {
		return len(t.content)
	}
	return offset + charNum
}

// Insert inserts content at the given position.
func (t *TextBox) Insert(index string, content string) {
	at := t.resolveIndex(index)
	t.content = t.content[:at] + content + t.content[at:]
}

// Delete removes the text between two positions.
func (t *TextBox) Delete(start, end string) {
	from := t.resolveIndex(start)
	to := t.resolveIndex(end)
	if from > to {
		from, to = to, from
	}
	t.content = t.content[:from] + t.content[to:]
}
