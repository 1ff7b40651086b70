package tokenizer

// scanString consumes a string or bytes literal at the cursor. prefixLen
// is the length of the already-validated prefix letters; the byte after
// them is the opening quote. Escape sequences are consumed as opaque
// backslash pairs; interpreting them is the parser's concern.
func (t *Tokenizer) scanString(prefixLen int) (Token, error) {
	src := t.source
	start := t.pos
	i := start + prefixLen
	quote := src[i]

	triple := i+2 < len(src) && src[i+1] == quote && src[i+2] == quote
	if triple {
		i += 3
	} else {
		i++
	}

	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\':
			// opaque escape pair, even in raw literals
			i += 2
		case c == quote:
			if !triple {
				return t.make(KindString, start, i+1), nil
			}
			if i+2 < len(src) && src[i+1] == quote && src[i+2] == quote {
				return t.make(KindString, start, i+3), nil
			}
			i++
		case !triple && c == '\n':
			return Token{}, lexError(ErrUnterminatedString, start)
		case !triple && c == '\r' && i+1 < len(src) && src[i+1] == '\n':
			return Token{}, lexError(ErrUnterminatedString, start)
		default:
			i++
		}
	}
	return Token{}, lexError(ErrUnterminatedString, start)
}

// stringPrefix reports whether an identifier-looking run at start is
// really a string prefix: at most two letters from the legal combinations
// followed directly by a quote.
func (t *Tokenizer) stringPrefix(start int) (int, bool) {
	src := t.source
	n := 0
	for n < 2 && start+n < len(src) && isPrefixLetter(src[start+n]) {
		n++
	}
	for ; n > 0; n-- {
		if start+n < len(src) && (src[start+n] == '\'' || src[start+n] == '"') && validStringPrefix(src[start:start+n]) {
			return n, true
		}
	}
	return 0, false
}

func isPrefixLetter(c byte) bool {
	switch c {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

// validStringPrefix checks the case-insensitive legal combinations:
// r, b, u, f, rb, br, fr, rf.
func validStringPrefix(s string) bool {
	switch len(s) {
	case 1:
		return true // any single prefix letter is legal
	case 2:
		a, b := lowerASCII(s[0]), lowerASCII(s[1])
		switch {
		case a == 'r' && (b == 'b' || b == 'f'):
			return true
		case b == 'r' && (a == 'b' || a == 'f'):
			return true
		}
	}
	return false
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
