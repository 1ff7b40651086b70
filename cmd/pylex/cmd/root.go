package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pylex",
	Short: "Tokenizer front end for Python source",
	Long: `pylex turns Python source files into a classified token stream,
tracking the block structure implied by indentation, bracket depth, and
line-continuation rules.

Commands:
  tokens   - dump the token stream of a file
  check    - tokenize files and verify the lossless round trip
  parse    - hand a file to the parser and print the syntax tree`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pylex: %v\n", err)
	}
	return err
}

// readSource loads a file and enforces the tokenizer's precondition: the
// buffer handed over is valid UTF-8 with any byte-order mark stripped.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src := strings.TrimPrefix(string(data), "\ufeff")
	if !utf8.ValidString(src) {
		return "", fmt.Errorf("%s: source is not valid UTF-8", path)
	}
	return src, nil
}
