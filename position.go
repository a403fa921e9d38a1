package cdecl

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Range is a half-open byte range [Start,End) within a single
// command's input. Mirrors the teacher's pos.go Range, which is kept
// deliberately tiny (two ints) since it is threaded through every AST
// node and every token.
type Range struct{ Start, End int }

func NewRange(start, end int) Range { return Range{Start: start, End: end} }

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

func (r Range) Str(input []byte) string { return string(input[r.Start:r.End]) }

// Location is a 1-based line/column pair plus the byte cursor it was
// computed from.
type Location struct {
	Line, Column int32
	Cursor       int
}

// Span is a pair of Locations: the node's source_loc of §3 ("line +
// [first_col, last_col]"). When Start.Line == End.Line it is one
// physical line and the caret printer (§6.2) only needs the columns.
type Span struct{ Start, End Location }

func (s Span) String() string {
	sl, sc := int(s.Start.Line), int(s.Start.Column)
	el, ec := int(s.End.Line), int(s.End.Column)
	if sl == el {
		if sc == ec {
			return fmt.Sprintf("%d:%d", sl, sc)
		}
		return fmt.Sprintf("%d:%d-%d", sl, sc, ec)
	}
	return fmt.Sprintf("%d:%d-%d:%d", sl, sc, el, ec)
}

// FirstCol and LastCol give the 1-based [first_col,last_col] pair
// spec.md §3 calls for, valid when the span stays on one line.
func (s Span) FirstCol() int { return int(s.Start.Column) }
func (s Span) LastCol() int  { return int(s.End.Column) }
func (s Span) Line() int     { return int(s.Start.Line) }

// LineIndex converts byte cursors to Locations in O(log lines) after
// an O(n) scan of the input, by recording where every line starts.
// One LineIndex is built per command by the scanner, which stamps
// every token's Span with it.
type LineIndex struct {
	input     []byte
	lineStart []int
}

func NewLineIndex(input []byte) *LineIndex {
	lineStart := make([]int, 1, 8)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{input: input, lineStart: lineStart}
}

func (li *LineIndex) Span(r Range) Span {
	return Span{Start: li.LocationAt(r.Start), End: li.LocationAt(r.End)}
}

func (li *LineIndex) LocationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(li.input) {
		cursor = len(li.input)
	}
	lineIdx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	lineStart := li.lineStart[lineIdx]
	col := int32(utf8.RuneCount(li.input[lineStart:cursor])) + 1
	return Location{Line: int32(lineIdx + 1), Column: col, Cursor: cursor}
}

// Line returns the raw text of the given 1-based line, without its
// trailing newline, for the echoed-input half of the §6.2 error
// format.
func (li *LineIndex) Line(n int) string {
	if n < 1 || n > len(li.lineStart) {
		return ""
	}
	start := li.lineStart[n-1]
	end := len(li.input)
	if n < len(li.lineStart) {
		end = li.lineStart[n] - 1
	}
	if end < start {
		end = start
	}
	return string(li.input[start:end])
}
