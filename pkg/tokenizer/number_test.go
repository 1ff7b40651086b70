package tokenizer_test

import (
	"testing"

	"github.com/agenthands/pylex/pkg/tokenizer"
)

// firstToken tokenizes src and returns the first token.
func firstToken(t *testing.T, src string) tokenizer.Token {
	t.Helper()
	tokens := mustTokenize(t, src)
	if len(tokens) == 0 {
		t.Fatalf("no tokens for %q", src)
	}
	return tokens[0]
}

func TestNumberWholeLiterals(t *testing.T) {
	sources := []string{
		"0",
		"7",
		"123",
		"007",
		"1_000",
		"1_000_000",
		"0xff",
		"0XFF",
		"0xDEAD_beef",
		"0o755",
		"0O17",
		"0b1010_1010",
		"0B1",
		"3.14",
		".5",
		".178_907_887_5",
		"1.",
		"1.e3",
		"1e10",
		"1E+5",
		"1e-3",
		"1_0e1_0",
		"1j",
		"1J",
		"3.14j",
		"1e3j",
		"10_000j",
		".5j",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			tok := firstToken(t, src)
			if tok.Kind != tokenizer.KindNumber {
				t.Fatalf("kind: got %v, want Number", tok.Kind)
			}
			if tok.Text != src {
				t.Errorf("text: got %q, want the whole literal %q", tok.Text, src)
			}
		})
	}
}

// Maximal munch stops one character early on a dangling underscore and
// leaves the rest for the following tokens.
func TestNumberUnderscoreTermination(t *testing.T) {
	tests := []struct {
		src  string
		want []string // texts of the non-EndMarker tokens
	}{
		{"1_0", []string{"1_0"}},
		{"1__0", []string{"1", "__0"}},
		{"1_", []string{"1", "_"}},
		{"1_0_", []string{"1_0", "_"}},
		{"0x_1", []string{"0", "x_1"}},
		{"0b1_", []string{"0b1", "_"}},
		{"1_.5", []string{"1", "_", ".5"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens := mustTokenize(t, tt.src)
			tokens = tokens[:len(tokens)-1] // drop EndMarker
			if len(tokens) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(tt.want), tokens)
			}
			for i, text := range tt.want {
				if tokens[i].Text != text {
					t.Errorf("token %d: got %q, want %q", i, tokens[i].Text, text)
				}
			}
		})
	}
}

func TestNumberMaximalMunchBoundaries(t *testing.T) {
	tests := []struct {
		src       string
		wantFirst string
	}{
		{"1e", "1"},       // bare exponent marker is not part of the literal
		{"1e+", "1"},      // nor is a signed exponent with no digits
		{"0x", "0"},       // radix prefix with no digits is not a radix literal
		{"1.5.6", "1.5"},  // second dot starts a new token
		{"5if", "5"},      // keyword directly after a number
		{"2+3", "2"},      // operator ends the literal
		{"0b102", "0b10"}, // '2' is not a binary digit
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok := firstToken(t, tt.src)
			if tok.Kind != tokenizer.KindNumber || tok.Text != tt.wantFirst {
				t.Errorf("got %v %q, want Number %q", tok.Kind, tok.Text, tt.wantFirst)
			}
		})
	}
}

func TestDotWithoutDigitIsPunctuation(t *testing.T) {
	tokens := mustTokenize(t, "a.b")
	if tokens[1].Kind != tokenizer.KindDot {
		t.Errorf("got %v, want Dot", tokens[1].Kind)
	}
	tokens = mustTokenize(t, ". x")
	if tokens[0].Kind != tokenizer.KindDot {
		t.Errorf("got %v, want Dot", tokens[0].Kind)
	}
}
