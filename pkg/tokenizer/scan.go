package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// scanName consumes the maximal identifier run at the cursor. The token's
// Value is the NFKC-normalized form; Text keeps the raw bytes so spans and
// round-tripping stay exact.
func (t *Tokenizer) scanName() Token {
	src := t.source
	start := t.pos
	end := start
	for end < len(src) {
		r, size := utf8.DecodeRuneInString(src[end:])
		if !isIdentContinue(r) {
			break
		}
		end += size
	}
	tok := t.make(KindName, start, end)
	tok.Value = norm.NFKC.String(tok.Text)
	return tok
}

// scanComment consumes from '#' up to, but not including, the line
// terminator, or to end of input. The terminator is left for the newline
// classifier.
func (t *Tokenizer) scanComment() Token {
	src := t.source
	start := t.pos
	end := start
	for end < len(src) && src[end] != '\n' {
		end++
	}
	if end < len(src) && end > start && src[end-1] == '\r' {
		end--
	}
	return t.make(KindComment, start, end)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// isIdentStart reports whether r may begin an identifier: underscore,
// letters, letter numbers, and the Other_ID_Start exceptions.
func isIdentStart(r rune) bool {
	if r == '_' {
		return true
	}
	if r < utf8.RuneSelf {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_ID_Start)
}

// isIdentContinue additionally admits digit, combining-mark, and connector
// classes.
func isIdentContinue(r rune) bool {
	if isIdentStart(r) {
		return true
	}
	if r < utf8.RuneSelf {
		return '0' <= r && r <= '9'
	}
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
