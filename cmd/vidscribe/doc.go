// Command vidscribe turns a folder of videos into transcripts and subtitles.
//
// The root command runs one batch over the input folder. Subcommands watch the
// folder for new videos, list the run history, summarize finished transcripts
// with Gemini, and check that the external tools are installed.
package main
