package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidscribe/internal/history"
	"github.com/nguyentantai21042004/vidscribe/pkg/fileutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		failedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent per-file outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path := cfg.HistoryPath()
			if !fileutil.Exists(path) {
				fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet")
				return nil
			}

			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit, failedOnly)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching entries")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(entries))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	cmd.Flags().BoolVar(&failedOnly, "failed", false, "Only show failed files")
	return cmd
}

func renderHistory(entries []history.Entry) string {
	g := newGrid("When", "State", "File", "Model", "Took", "Detail").alignRight(4)
	for _, e := range entries {
		detail := e.Message
		if e.Kind != "" {
			detail = e.Kind + ": " + detail
		}
		g.add(
			e.At.Local().Format("2006-01-02 15:04:05"),
			e.State,
			filepath.Base(e.Path),
			e.Model,
			e.Duration.Round(100*time.Millisecond).String(),
			detail,
		)
	}
	return g.String()
}
