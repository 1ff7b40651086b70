package tokenizer_test

import (
	"testing"

	"github.com/agenthands/pylex/pkg/tokenizer"
)

var roundTripSources = []string{
	"",
	"\n",
	"   ",
	"x\n",
	"a = 1\n",
	"a = 1",
	"x  =\t1\n",
	"if x:\n    y = 1\n",
	"if a:\n  if b:\n    c\nd\n",
	"def f(a, b=2, *args, **kwargs):\n    return a + b\n",
	"f(1,\n2)\n",
	"xs = [\n    1,\n    2,\n]\n",
	"d = {'k': 'v',\n     'm': [1, 2]}\n",
	"x = 1 + \\\n    2\n",
	"# leading comment\nx = 1  # trailing comment\n",
	"\n\n\nx\n\n",
	"if a:\n\n    # note\n  \n    b\n",
	"s = 'it\\'s'\n",
	"s = '''multi\nline\nstring'''\n",
	"s = rb'\\x00' + f'{x!r}'\n",
	"crlf = 1\r\nnext = 2\r\n",
	"n = 0xDEAD_beef + 0o755 + 0b10_01 + 1_000.5e-1_0j\n",
	"\fx = 1\n",
	"if a:\n\tb\n\tc\nd",
	"变量 = \ufb01le + π\n",
	"while True:\n    if x:\n        break\n    else:\n        continue\n",
	"class C:\n    def m(self) -> int:\n        return self.x ** 2 // 3\n",
	"t = x[...] if y @ z else ~w\n",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTripSources {
		tokens, err := tokenizer.Tokenize(src)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", src, err)
			continue
		}
		if got := tokenizer.Untokenize(tokens); got != src {
			t.Errorf("round trip of %q: got %q", src, got)
		}
	}
}

// Every source byte belongs to exactly one token: each token's lead sits
// directly before its span, and spans never overlap or leave gaps.
func TestSpansAreContiguous(t *testing.T) {
	for _, src := range roundTripSources {
		tokens, err := tokenizer.Tokenize(src)
		if err != nil {
			t.Errorf("Tokenize(%q): %v", src, err)
			continue
		}
		pos := 0
		for i, tok := range tokens {
			if tok.Start-len(tok.Lead) != pos {
				t.Errorf("source %q token %d (%v): lead starts at %d, want %d",
					src, i, tok.Kind, tok.Start-len(tok.Lead), pos)
				break
			}
			if tok.End < tok.Start {
				t.Errorf("source %q token %d: span [%d,%d) inverted", src, i, tok.Start, tok.End)
				break
			}
			if tok.Text != src[tok.Start:tok.End] {
				t.Errorf("source %q token %d: text %q does not match span", src, i, tok.Text)
				break
			}
			pos = tok.End
		}
		if pos != len(src) {
			t.Errorf("source %q: tokens cover %d bytes of %d", src, pos, len(src))
		}
	}
}
