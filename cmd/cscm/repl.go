package main

import (
	"os"
	"path/filepath"

	"github.com/dangerclosesec/cscm/internal/repl"
	"github.com/spf13/cobra"
)

var noHistory bool

func init() {
	replCmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not read or write the line history file")
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Start an interactive session that compiles functions or expressions as they are typed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		historyFile := ""
		if !noHistory {
			historyFile = filepath.Join(os.TempDir(), ".cscm_history")
		}
		return repl.Start(cmd.OutOrStdout(), a.compilerConfig(), version, historyFile)
	},
}
