package report

// TextSpan represents a range of source text used to locate diagnostics.
// Spans are inclusive on both ends; line and column numbers are zero-indexed.
// A nil span indicates a synthetic location (eg. a fatal error raised outside
// of any particular piece of source text).
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// NewSpanOver returns a new text span which spans over and between the two
// given text spans.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

// Synthetic is the span used for diagnostics that have no real source
// location, eg. an undefined structure referenced only by name.
var Synthetic *TextSpan = nil
