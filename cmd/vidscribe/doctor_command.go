package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidscribe/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that ffmpeg and the recognizer are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), renderDependencies(statuses))

			if missing := deps.Missing(statuses); len(missing) > 0 {
				return fmt.Errorf("%d requirement(s) missing", len(missing))
			}
			return nil
		},
	}
}

func renderDependencies(statuses []deps.Status) string {
	g := newGrid("Requirement", "Command", "Status", "Used for", "Detail")
	for _, s := range statuses {
		state := "ok"
		if !s.Available {
			state = "missing"
		}
		g.add(s.Name, s.Command, state, s.Description, s.Detail)
	}
	return g.String()
}
