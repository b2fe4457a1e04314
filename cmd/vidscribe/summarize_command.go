package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidscribe/internal/summarizer"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize",
		Short: "Write Gemini summaries and DOCX exports for finished transcripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log := ctx.ensureLogger()

			gen, err := summarizer.NewGemini(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
			if err != nil {
				return err
			}

			res, err := summarizer.New(gen, log).SummarizeAll(cmd.Context(), cfg.Paths.Output)
			if res != nil {
				fmt.Fprintln(cmd.OutOrStdout(), newGrid("Summarized", "Skipped", "Failed").
					alignRight(0, 1, 2).
					add(res.Summarized, res.Skipped, res.Failed).
					String())
			}
			if err != nil {
				return err
			}
			if res.Failed > 0 {
				return errFilesFailed
			}
			return nil
		},
	}
}
