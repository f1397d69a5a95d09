package main

import (
	"fmt"
	"os"

	"github.com/dangerclosesec/cscm/compiler/arena"
	"github.com/dangerclosesec/cscm/compiler/parser"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the classified token stream",
	Long:  `Print every classified token with its position, binary operator flag and precedence.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		tokens, err := parser.Tokens(src, arena.New(a.cfg.Arena.Size))
		for _, tok := range tokens {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		if err != nil {
			return fmt.Errorf("%s:%w", args[0], err)
		}
		return nil
	},
}

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed syntax tree",
	Long:  `Parse a source file and print the function with every expression fully parenthesized.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		fn, err := parser.ParseFile(args[0], arena.New(a.cfg.Arena.Size))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), fn)
		return nil
	},
}
