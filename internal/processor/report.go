package processor

// Failure describes one file that could not be processed.
type Failure struct {
	Path    string
	Message string
}

// Report summarizes a batch run
type Report struct {
	RunID     string
	Processed int
	Skipped   int
	Failed    []Failure
}

// Total is the number of files the run reached.
func (r *Report) Total() int {
	return r.Processed + r.Skipped + len(r.Failed)
}

// HasFailures reports whether any file failed.
func (r *Report) HasFailures() bool {
	return len(r.Failed) > 0
}
