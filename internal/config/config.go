package config

import (
	"path/filepath"
)

type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Recognizer RecognizerConfig `yaml:"recognizer"`
	FFmpeg     FFmpegConfig     `yaml:"ffmpeg"`
	Logging    LoggingConfig    `yaml:"logging"`
	History    HistoryConfig    `yaml:"history"`
	Gemini     GeminiConfig     `yaml:"gemini"`
}

type PathsConfig struct {
	Input  string `yaml:"input" validate:"required"`
	Output string `yaml:"output" validate:"required"`
	// Temp holds extracted audio; empty means the system temp dir.
	Temp string `yaml:"temp"`
}

type RecognizerConfig struct {
	Backend    string `yaml:"backend" validate:"required,oneof=whisper whisper.cpp"`
	BinaryPath string `yaml:"binary_path" validate:"required"`
	Model      string `yaml:"model" validate:"required,oneof=tiny base small medium large"`
	ModelDir   string `yaml:"model_dir"`
	Language   string `yaml:"language" validate:"required"`
	Threads    int    `yaml:"threads" validate:"min=0"`
	Prompt     string `yaml:"prompt"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path" validate:"required"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

const (
	BackendWhisper    = "whisper"
	BackendWhisperCPP = "whisper.cpp"

	DefaultConfigPath = "config.yaml"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Input:  "input_videos",
			Output: "output_transcriptions",
		},
		Recognizer: RecognizerConfig{
			Backend:  BackendWhisper,
			Model:    "base",
			ModelDir: "models",
			Language: "en",
			Threads:  4,
		},
		FFmpeg: FFmpegConfig{
			BinaryPath: "ffmpeg",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

// HistoryPath returns the ledger location, defaulting to a file inside the output dir.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(c.Paths.Output, ".vidscribe", "history.db")
}
