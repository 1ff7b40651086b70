package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/agenthands/pylex/pkg/tokenizer"
)

var (
	styleOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleFail = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleLoc  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Tokenize files and verify the lossless round trip",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if err := checkFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", styleFail.Render("FAIL"), err)
				failed++
				continue
			}
			fmt.Printf("%s %s\n", styleOK.Render("ok"), path)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func checkFile(path string) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}
	tokens, err := tokenizer.Tokenize(src)
	if err != nil {
		return describeLexError(path, src, err)
	}
	if got := tokenizer.Untokenize(tokens); got != src {
		return fmt.Errorf("%s: reconstructed source differs from input", path)
	}
	return nil
}

// describeLexError rewraps a tokenizer error with the file name and a
// human-readable line:column location.
func describeLexError(path, src string, err error) error {
	var lexErr *tokenizer.Error
	if !errors.As(err, &lexErr) {
		return fmt.Errorf("%s: %w", path, err)
	}
	pos := tokenizer.PositionAt(src, lexErr.Offset)
	loc := styleLoc.Render(fmt.Sprintf("%s:%d:%d", path, pos.Line, pos.Column))
	return fmt.Errorf("%s: %s", loc, lexErr.Code)
}
