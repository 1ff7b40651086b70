package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agenthands/pylex/pkg/tokenizer"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a file and dump the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args[0])
		if err != nil {
			return err
		}
		tokens, err := tokenizer.Tokenize(src)
		if err != nil {
			return describeLexError(args[0], src, err)
		}
		return writeTokens(src, tokens)
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensFormat, "format", "f", "text", "output format: text, json, or yaml")
	rootCmd.AddCommand(tokensCmd)
}

// tokenRecord is the serialized shape of one token for json/yaml dumps.
type tokenRecord struct {
	Kind  string `json:"kind" yaml:"kind"`
	Text  string `json:"text" yaml:"text"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Line  int    `json:"line" yaml:"line"`
	Col   int    `json:"col" yaml:"col"`
}

func writeTokens(src string, tokens []tokenizer.Token) error {
	switch tokensFormat {
	case "text":
		for _, tok := range tokens {
			pos := tokenizer.PositionAt(src, tok.Start)
			fmt.Printf("%4d:%-3d %-20s %q\n", pos.Line, pos.Column, tok.Kind, tok.Text)
		}
		return nil
	case "json", "yaml":
		records := make([]tokenRecord, 0, len(tokens))
		for _, tok := range tokens {
			pos := tokenizer.PositionAt(src, tok.Start)
			rec := tokenRecord{
				Kind:  tok.Kind.String(),
				Text:  tok.Text,
				Start: tok.Start,
				End:   tok.End,
				Line:  pos.Line,
				Col:   pos.Column,
			}
			if tok.Value != tok.Text {
				rec.Value = tok.Value
			}
			records = append(records, rec)
		}
		if tokensFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}
		out, err := yaml.Marshal(records)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}
	return fmt.Errorf("unknown format %q", tokensFormat)
}
