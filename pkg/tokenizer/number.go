package tokenizer

// scanNumber consumes the maximal numeric literal at the cursor. The
// cursor is on a digit, or on a '.' known to be followed by a digit.
// Underscores are legal only singly and strictly between digits; a
// dangling underscore ends the literal early instead of failing. The
// scanner never rejects: it stops at the first byte that cannot extend the
// literal and leaves it for the next production step.
func (t *Tokenizer) scanNumber() Token {
	src := t.source
	start := t.pos

	// Radix-prefixed integer forms. A prefix with no digit after it is not
	// a radix literal; the leading zero then scans as a decimal literal.
	if src[start] == '0' && start+1 < len(src) {
		var digit func(byte) bool
		switch src[start+1] {
		case 'x', 'X':
			digit = isHexDigit
		case 'o', 'O':
			digit = isOctalDigit
		case 'b', 'B':
			digit = isBinaryDigit
		}
		if digit != nil {
			if end, ok := radixRun(src, start+2, digit); ok {
				return t.make(KindNumber, start, end)
			}
		}
	}

	end := digitRun(src, start)
	if end < len(src) && src[end] == '.' {
		// Either a fractional part follows, or the literal itself started
		// with '.' (the driver guaranteed a digit after it). "1." is a
		// complete float; the run after the dot may be empty.
		end = digitRun(src, end+1)
	}
	end = exponentRun(src, end)
	if end < len(src) && (src[end] == 'j' || src[end] == 'J') {
		end++
	}
	return t.make(KindNumber, start, end)
}

// digitRun consumes decimal digits starting at i, with single underscores
// between digits. Returns i unchanged when no digit is present.
func digitRun(src string, i int) int {
	end := i
	for end < len(src) {
		c := src[end]
		if isDigit(c) {
			end++
			continue
		}
		if c == '_' && end > i && end+1 < len(src) && isDigit(src[end+1]) {
			end += 2
			continue
		}
		break
	}
	return end
}

// radixRun consumes the digit group after a radix prefix. At least one
// digit is required and an underscore may not follow the prefix directly.
func radixRun(src string, i int, digit func(byte) bool) (int, bool) {
	if i >= len(src) || !digit(src[i]) {
		return 0, false
	}
	end := i + 1
	for end < len(src) {
		c := src[end]
		if digit(c) {
			end++
			continue
		}
		if c == '_' && end+1 < len(src) && digit(src[end+1]) {
			end += 2
			continue
		}
		break
	}
	return end, true
}

// exponentRun consumes an exponent part at i if one is fully present:
// 'e'/'E', an optional sign, and at least one digit. A bare 'e' with no
// digits is not part of the literal.
func exponentRun(src string, i int) int {
	if i >= len(src) || (src[i] != 'e' && src[i] != 'E') {
		return i
	}
	j := i + 1
	if j < len(src) && (src[j] == '+' || src[j] == '-') {
		j++
	}
	if j >= len(src) || !isDigit(src[j]) {
		return i
	}
	return digitRun(src, j)
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isOctalDigit(c byte) bool {
	return '0' <= c && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}
