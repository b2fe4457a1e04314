package processor

// State is the lifecycle position of one file within a run.
type State string

const (
	StatePending     State = "pending"
	StateExtracting  State = "extracting"
	StateRecognizing State = "recognizing"
	StateFormatting  State = "formatting"
	StateWriting     State = "writing"
	StateDone        State = "done"
	StateSkipped     State = "skipped"
	StateFailed      State = "failed"
)

func (s State) String() string { return string(s) }

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateDone || s == StateSkipped || s == StateFailed
}
