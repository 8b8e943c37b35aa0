package glyph

import "tableflip.dev/tasktree/pkg/entry"

type Glyph struct {
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Marker is the leading symbol an entry is drawn with.
type Marker int

const (
	Open Marker = iota
	Done
	Folder
)

func DefaultGlyphs() []Glyph {
	return []Glyph{
		Open:   {Symbol: "[ ]", Meaning: "task"},
		Done:   {Symbol: "[x]", Meaning: "task done"},
		Folder: {Symbol: "▸", Meaning: "folder"},
	}
}

func (m Marker) Glyph() Glyph {
	return DefaultGlyphs()[m]
}

func (m Marker) String() string {
	return m.Glyph().Symbol
}

// For picks the marker of e.
func For(e *entry.Entry) Marker {
	switch {
	case e.Folder != nil:
		return Folder
	case e.Task != nil && e.Task.Done:
		return Done
	}
	return Open
}
