package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/minipy/foundation/minipy/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [FILE]",
	Short: "Print the token stream of a source file",
	Long: `Lexes the file, or stdin without a file, and prints one token per line.
Tokens read before an invalid token are still printed.

Examples:
  minipy tokens main.py
  minipy tokens --format yaml main.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	p, err := printer(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	_, r, err := openSource(cmd, path)
	if err != nil {
		return err
	}
	defer r.Close()

	var tokens []lexer.Token
	var lexErr error
	for tok, err := range engine().Tokens(r) {
		if err != nil {
			lexErr = err
			break
		}
		tokens = append(tokens, tok)
	}

	if err := p.Tokens(tokens); err != nil {
		return err
	}
	return lexErr
}
