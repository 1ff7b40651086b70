package cmd

import (
	"fmt"
	"strings"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
	"github.com/spf13/cobra"
)

// The parser is an external collaborator: the tokenizer feeds a compiler
// pipeline but does not build trees itself. This command hands the file to
// gpython and prints the resulting syntax tree.
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		mod, err := parser.Parse(strings.NewReader(src), args[0], py.ExecMode)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		fmt.Println(ast.Dump(mod))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
