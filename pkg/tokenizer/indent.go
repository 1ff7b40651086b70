package tokenizer

import "strings"

// tabSize is the tab-stop interval used when folding leading whitespace
// into an indentation width.
const tabSize = 8

// indentLevel is one entry of the indentation stack: the literal leading
// whitespace of the block and its computed width. Widths are strictly
// increasing bottom to top; the stack is empty in the outermost block.
type indentLevel struct {
	text  string
	width int
}

// resolveIndentation runs at the start of a logical line. It measures the
// leading whitespace, compares it against the indentation stack, and
// returns the Indent or Dedent tokens the comparison demands. Blank and
// comment-only lines return nothing and leave the stack untouched. The
// cursor is only advanced when an Indent token is emitted (the whitespace
// becomes that token's text); otherwise the blanks are left for the driver
// to fold into the next token's lead.
func (t *Tokenizer) resolveIndentation() ([]Token, error) {
	src := t.source
	lineStart := t.pos
	end := lineStart
	for end < len(src) {
		c := src[end]
		if c != ' ' && c != '\t' && c != '\f' {
			break
		}
		end++
	}

	// Lines holding no real token never affect indentation.
	if end >= len(src) || isLineBlankAt(src, end) {
		return nil, nil
	}

	measured := src[lineStart:end]
	width := indentWidth(measured)
	top := indentLevel{}
	if n := len(t.indents); n > 0 {
		top = t.indents[n-1]
	}

	switch {
	case width == top.width:
		if !prefixCompatible(measured, top.text) {
			return nil, lexError(ErrIndentationInconsistency, lineStart)
		}
		return nil, nil

	case width > top.width:
		if !prefixCompatible(measured, top.text) {
			return nil, lexError(ErrIndentationInconsistency, lineStart)
		}
		t.indents = append(t.indents, indentLevel{text: measured, width: width})
		return []Token{t.make(KindIndent, lineStart, end)}, nil
	}

	// Dedent: the new indentation must be an ancestor literally on the
	// stack after popping.
	if !prefixCompatible(top.text, measured) {
		return nil, lexError(ErrIndentationInconsistency, lineStart)
	}
	var tokens []Token
	for len(t.indents) > 0 && t.indents[len(t.indents)-1].width > width {
		t.indents = t.indents[:len(t.indents)-1]
		tokens = append(tokens, Token{Kind: KindDedent, Start: lineStart, End: lineStart})
	}
	landing := indentLevel{}
	if n := len(t.indents); n > 0 {
		landing = t.indents[n-1]
	}
	if landing.width != width {
		return nil, lexError(ErrIndentationMismatch, lineStart)
	}
	if !prefixCompatible(measured, landing.text) {
		return nil, lexError(ErrIndentationInconsistency, lineStart)
	}
	return tokens, nil
}

// isLineBlankAt reports whether the line content beginning at offset (the
// first non-blank byte of a line) is empty for indentation purposes: a
// comment or a line terminator.
func isLineBlankAt(src string, offset int) bool {
	switch src[offset] {
	case '#', '\n':
		return true
	case '\r':
		return offset+1 < len(src) && src[offset+1] == '\n'
	}
	return false
}

// indentWidth folds a whitespace run into a column count: a space adds
// one, a tab advances to the next multiple of tabSize, a form feed adds
// nothing.
func indentWidth(ws string) int {
	width := 0
	for i := 0; i < len(ws); i++ {
		switch ws[i] {
		case ' ':
			width++
		case '\t':
			width = width/tabSize*tabSize + tabSize
		}
	}
	return width
}

// prefixCompatible reports whether one whitespace string is a literal
// prefix of the other. Equal-width runs that mix tabs and spaces
// differently fail this check; that is the tab/space inconsistency error.
func prefixCompatible(a, b string) bool {
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}
