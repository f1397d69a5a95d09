package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/dangerclosesec/cscm/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	historyLimit  int
	historyOrigin string
	historyFailed bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show")
	historyCmd.Flags().StringVar(&historyOrigin, "origin", "", "Only show entries from this origin (cli, http, watch)")
	historyCmd.Flags().BoolVar(&historyFailed, "failed", false, "Only show failed compilations")
}

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "Show recorded compilations",
	Long:  `List recent compilations from the history database, or show one entry in detail.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.Close()

		if len(args) == 1 {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid compilation ID %q: %w", args[0], err)
			}
			c, err := a.logService.GetCompilation(cmd.Context(), id)
			if err != nil {
				return err
			}
			printCompilation(cmd.OutOrStdout(), c)
			return nil
		}

		params := repository.QueryParams{Origin: historyOrigin, Limit: historyLimit}
		if historyFailed {
			success := false
			params.Success = &success
		}

		records, total, err := a.logService.ListCompilations(cmd.Context(), params)
		if err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), records, total)
		return nil
	},
}

func printHistory(w io.Writer, records []model.Compilation, total int64) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIME\tORIGIN\tSOURCE\tRESULT")
	for _, c := range records {
		result := "ok " + c.FunctionName
		if !c.Success {
			result = fmt.Sprintf("%s at %d:%d", c.ErrorCode, c.Line, c.Column)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Timestamp.Format(time.RFC3339), c.Origin, c.SourceName, result)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d of %d\n", len(records), total)
}

func printCompilation(w io.Writer, c *model.Compilation) {
	fmt.Fprintf(w, "ID:         %s\n", c.ID)
	fmt.Fprintf(w, "Time:       %s\n", c.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "Origin:     %s\n", c.Origin)
	fmt.Fprintf(w, "Source:     %s (%d bytes)\n", c.SourceName, c.SourceBytes)
	fmt.Fprintf(w, "Duration:   %s\n", time.Duration(c.DurationUS)*time.Microsecond)
	if c.Success {
		fmt.Fprintf(w, "Function:   %s (%d statements)\n", c.FunctionName, c.Statements)
		fmt.Fprintf(w, "Output:     %d bytes, arena %d bytes\n", c.OutputBytes, c.ArenaUsed)
		return
	}
	fmt.Fprintf(w, "Error:      %s\n", c.ErrorMessage)
	fmt.Fprintf(w, "Error code: %s\n", c.ErrorCode)
}
