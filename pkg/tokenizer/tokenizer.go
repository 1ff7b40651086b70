// Package tokenizer turns Python source text into a stream of classified
// tokens, tracking the block structure implied by indentation, bracket
// depth, and line-continuation rules.
//
// The input must already be valid UTF-8; encoding detection and BOM
// stripping are the caller's responsibility.
package tokenizer

import (
	"io"
	"strings"
)

// Tokenizer produces a lazy, finite, non-restartable token stream over a
// single source buffer. A Tokenizer is not safe for concurrent use; create
// one per source buffer and discard it after the EndMarker.
type Tokenizer struct {
	source string
	pos    int

	depth   int  // unmatched open brackets
	prev    Kind // previous token kind, drives line-start detection
	started bool
	done    bool
	err     error

	indents []indentLevel
	pending []Token // queued tokens from a multi-token emission

	// pending lead region: blanks skipped since the last emitted token,
	// always contiguous and immediately before the next token start
	leadLo, leadHi int
}

// New creates a tokenizer over source.
func New(source string) *Tokenizer {
	return &Tokenizer{source: source}
}

// Next produces the next token. After the single EndMarker has been
// delivered, Next returns io.EOF. Any other error is a *Error carrying the
// byte offset of the failure; the tokenizer should then be treated as
// exhausted.
func (t *Tokenizer) Next() (Token, error) {
	if t.err != nil {
		return Token{}, t.err
	}
	if len(t.pending) > 0 {
		tok := t.pending[0]
		t.pending = t.pending[1:]
		return tok, nil
	}
	if t.done {
		return Token{}, io.EOF
	}

	atLineStart := !t.started || t.prev == KindNewlineLogical
	t.started = true

	if atLineStart && t.pos < len(t.source) {
		toks, err := t.resolveIndentation()
		if err != nil {
			t.err = err
			return Token{}, err
		}
		if len(toks) > 0 {
			t.pending = append(t.pending, toks[1:]...)
			t.prev = toks[0].Kind
			return toks[0], nil
		}
	}

	t.skipBlanks()

	if t.pos >= len(t.source) {
		if t.depth != 0 {
			t.err = lexError(ErrUnbalancedBrackets, t.pos)
			return Token{}, t.err
		}
		t.done = true
		if len(t.indents) == 0 {
			t.prev = KindEndMarker
			return t.make(KindEndMarker, t.pos, t.pos), nil
		}
		// Close the still-open blocks, then the single EndMarker.
		for range t.indents[1:] {
			t.pending = append(t.pending, Token{Kind: KindDedent, Start: t.pos, End: t.pos})
		}
		t.indents = t.indents[:0]
		t.pending = append(t.pending, t.make(KindEndMarker, t.pos, t.pos))
		t.prev = KindDedent
		return Token{Kind: KindDedent, Start: t.pos, End: t.pos}, nil
	}

	tok, err := t.scanToken()
	if err != nil {
		t.err = err
		return Token{}, err
	}

	switch tok.Kind {
	case KindLeftParenthesis, KindLeftSquareBracket, KindLeftBrace:
		t.depth++
	case KindRightParenthesis, KindRightSquareBracket, KindRightBrace:
		t.depth--
	}
	t.prev = tok.Kind
	return tok, nil
}

// scanToken dispatches on the character at the cursor. The cursor is known
// to be inside the source and not on intertoken blanks.
func (t *Tokenizer) scanToken() (Token, error) {
	src := t.source
	start := t.pos
	c := src[start]

	switch {
	case c == '#':
		return t.scanComment(), nil
	case c == '\n':
		return t.newline(start, start+1), nil
	case c == '\r':
		if start+1 < len(src) && src[start+1] == '\n' {
			return t.newline(start, start+2), nil
		}
		// a bare carriage return is not a line terminator
		return Token{}, lexError(ErrInvalidCharacter, start)
	case isDigit(c):
		return t.scanNumber(), nil
	case c == '.' && start+1 < len(src) && isDigit(src[start+1]):
		return t.scanNumber(), nil
	case c == '\'' || c == '"':
		return t.scanString(0)
	}

	if n, ok := t.stringPrefix(start); ok {
		return t.scanString(n)
	}
	if r := firstRune(src[start:]); isIdentStart(r) {
		return t.scanName(), nil
	}
	if tok, ok := t.matchSimple(start); ok {
		return tok, nil
	}
	return Token{}, lexError(ErrInvalidCharacter, start)
}

// newline classifies a line terminator by the bracket depth at the moment
// it is scanned.
func (t *Tokenizer) newline(start, end int) Token {
	kind := KindNewlineLogical
	if t.depth > 0 {
		kind = KindNewlineContinuation
	}
	return t.make(kind, start, end)
}

// matchSimple tries the ordered fixed-token table at start. Table order
// guarantees the first hit is the longest.
func (t *Tokenizer) matchSimple(start int) (Token, bool) {
	src := t.source
	for _, entry := range &simpleTokens {
		end := start + len(entry.text)
		if end <= len(src) && src[start:end] == entry.text {
			return t.make(entry.kind, start, end), true
		}
	}
	return Token{}, false
}

// make builds a token over source[start:end], attaches any pending lead
// blanks, and advances the cursor.
func (t *Tokenizer) make(kind Kind, start, end int) Token {
	text := t.source[start:end]
	tok := Token{
		Kind:  kind,
		Text:  text,
		Value: text,
		Lead:  t.takeLead(),
		Start: start,
		End:   end,
	}
	t.pos = end
	return tok
}

// skipBlanks consumes intertoken spaces, tabs, and form feeds into the
// pending lead region.
func (t *Tokenizer) skipBlanks() {
	start := t.pos
	for t.pos < len(t.source) {
		c := t.source[t.pos]
		if c != ' ' && c != '\t' && c != '\f' {
			break
		}
		t.pos++
	}
	if t.pos > start {
		if t.leadLo == t.leadHi {
			t.leadLo = start
		}
		t.leadHi = t.pos
	}
}

func (t *Tokenizer) takeLead() string {
	if t.leadLo == t.leadHi {
		return ""
	}
	lead := t.source[t.leadLo:t.leadHi]
	t.leadLo, t.leadHi = 0, 0
	return lead
}

// Tokenize runs a fresh tokenizer over source and collects the whole
// stream, EndMarker included.
func Tokenize(source string) ([]Token, error) {
	tk := New(source)
	var tokens []Token
	for {
		tok, err := tk.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// Untokenize reconstructs the exact source text from a token stream
// produced by Tokenize. Every source byte lives in exactly one token's
// Lead or Text, so the reconstruction is lossless.
func Untokenize(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Lead)
		b.WriteString(tok.Text)
	}
	return b.String()
}
