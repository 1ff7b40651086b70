package tokenizer

import "fmt"

// ErrorCode classifies a tokenization failure.
type ErrorCode uint8

const (
	// ErrInvalidCharacter means no scanner could classify the codepoint at
	// the cursor.
	ErrInvalidCharacter ErrorCode = iota + 1
	// ErrIndentationInconsistency means the leading whitespace of a line
	// mixes tabs and spaces incompatibly with the enclosing block.
	ErrIndentationInconsistency
	// ErrIndentationMismatch means a dedent landed on a width that is not
	// any level currently on the indentation stack.
	ErrIndentationMismatch
	// ErrUnterminatedString means a string literal was not closed before
	// end of input or an illegal bare line terminator.
	ErrUnterminatedString
	// ErrUnbalancedBrackets means bracket depth was non-zero at end of
	// input.
	ErrUnbalancedBrackets
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidCharacter:
		return "invalid character"
	case ErrIndentationInconsistency:
		return "inconsistent use of tabs and spaces in indentation"
	case ErrIndentationMismatch:
		return "unindent does not match any outer indentation level"
	case ErrUnterminatedString:
		return "unterminated string literal"
	case ErrUnbalancedBrackets:
		return "unbalanced brackets at end of input"
	}
	return "unknown error"
}

// Error is a position-tagged tokenization failure. Offset is the byte
// offset at which the condition was detected; for unterminated strings it
// is the literal's start offset.
type Error struct {
	Code   ErrorCode
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at byte %d", e.Code, e.Offset)
}

func lexError(code ErrorCode, offset int) *Error {
	return &Error{Code: code, Offset: offset}
}

// Position is a 1-based line and column derived from a byte offset.
type Position struct {
	Line   int
	Column int
}

// PositionAt recovers the line and column of a byte offset in source.
// Columns count bytes within the line, starting at 1. Offsets past the end
// of source report the position just after the final byte.
func PositionAt(source string, offset int) Position {
	if offset > len(source) {
		offset = len(source)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}
