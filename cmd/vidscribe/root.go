package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &commandFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "vidscribe",
		Short: "Transcribe every video in a folder into text, JSON and SRT",
		Long: `vidscribe extracts the audio track of each video in the input folder,
runs Whisper speech recognition on it, and writes <name>_transcription.txt,
<name>_transcription.json and <name>.srt into the output folder.

Videos whose three outputs already exist are skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags.configSet = cmd.Flags().Changed("config")
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatchCommand(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "config.yaml", "Configuration file path")
	pf.StringVarP(&flags.input, "input", "i", "", "Folder containing videos (overrides paths.input)")
	pf.StringVarP(&flags.output, "output", "o", "", "Folder for transcripts (overrides paths.output)")
	pf.StringVarP(&flags.model, "model", "m", "", "Whisper model size: tiny, base, small, medium, large")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flags.noProgress, "no-progress", false, "Disable the progress bar")

	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newSummarizeCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
