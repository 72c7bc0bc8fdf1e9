// Package span defines the Location/Span pair shared by every token,
// syntax node, bound node and diagnostic in the pipeline.
package span

import "github.com/ibcompiler/ib/internal/token"

// Location is a line/column/char-offset triple.
type Location struct {
	Line   int
	Col    int
	Offset int
}

// Span is a half-open region of source text, start inclusive.
type Span struct {
	Start Location
	End   Location
}

// New builds a Span from two explicit Locations.
func New(start, end Location) Span {
	return Span{Start: start, End: end}
}

// FromToken builds a single-token Span.
func FromToken(t token.Token) Span {
	start := Location{Line: t.Line, Col: t.Column, Offset: t.Offset}
	end := Location{Line: t.Line, Col: t.Column + len(t.Lexeme), Offset: t.Offset + len(t.Lexeme)}
	return Span{Start: start, End: end}
}

// Merge returns the span covering both a and b: the earlier start and the
// later end.
func Merge(a, b Span) Span {
	start := a.Start
	if b.Start.Offset < start.Offset {
		start = b.Start
	}
	end := a.End
	if b.End.Offset > end.Offset {
		end = b.End
	}
	return Span{Start: start, End: end}
}
