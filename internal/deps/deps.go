// Package deps checks that the external tools the pipeline shells out to are installed.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/vidscribe/internal/config"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
)

// Requirement is an external binary or file the pipeline relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	// File marks a requirement checked with os.Stat instead of PATH lookup.
	File bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements lists what cfg needs at runtime.
func Requirements(cfg *config.Config) []Requirement {
	reqs := []Requirement{
		{Name: "FFmpeg", Command: cfg.FFmpeg.BinaryPath, Description: "audio extraction"},
		{Name: "Recognizer", Command: cfg.Recognizer.BinaryPath, Description: cfg.Recognizer.Backend + " speech recognition"},
	}
	if cfg.Recognizer.Backend == config.BackendWhisperCPP {
		model := recognizer.ModelSize(cfg.Recognizer.Model).GGMLFile()
		reqs = append(reqs, Requirement{
			Name:        "Model",
			Command:     filepath.Join(cfg.Recognizer.ModelDir, model),
			Description: "whisper.cpp model file",
			File:        true,
		})
	}
	return reqs
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		case req.File:
			if _, err := os.Stat(cmd); err != nil {
				status.Detail = fmt.Sprintf("file %q not found", cmd)
			} else {
				status.Available = true
			}
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found", cmd)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}

// Missing filters statuses down to unavailable ones.
func Missing(statuses []Status) []Status {
	var out []Status
	for _, s := range statuses {
		if !s.Available {
			out = append(out, s)
		}
	}
	return out
}
