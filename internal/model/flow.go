package model

import "errors"

// FlowStatus is the assessment state machine phase
type FlowStatus string

const (
	FlowPresenting FlowStatus = "presenting"
	FlowSubmitting FlowStatus = "submitting"
	FlowComplete   FlowStatus = "complete"
	FlowFailed     FlowStatus = "failed" // recoverable, catalog was unavailable
)

var (
	// ErrFlowClosed is returned when an answer arrives after submission began.
	ErrFlowClosed = errors.New("assessment is no longer accepting answers")
	// ErrStaleAnswer is returned when an answer targets an already-passed
	// question, e.g. a duplicate submit event from a re-render.
	ErrStaleAnswer = errors.New("answer does not match the current question")
)

// FlowState is the full assessment position for one user: the effective
// question sequence (base catalog plus spliced conditional items), the
// accumulated answer ledger, and a monotonic cursor.
type FlowState struct {
	Sequence []Question   `json:"sequence"`
	Ledger   AnswerLedger `json:"ledger"`
	Cursor   int          `json:"cursor"`
	Status   FlowStatus   `json:"status"`
	Language string       `json:"language"`
	// PendingProfile holds the synthesized profile between synthesis and a
	// successful persistence write, so a persistence retry never re-runs
	// synthesis and always commits the originally produced profile.
	PendingProfile string `json:"pendingProfile,omitempty"`
}

// NewFlowState starts a flow at the first question of the given sequence.
func NewFlowState(sequence []Question, language string) *FlowState {
	return &FlowState{
		Sequence: sequence,
		Ledger:   AnswerLedger{},
		Cursor:   0,
		Status:   FlowPresenting,
		Language: language,
	}
}

// Current returns the question at the cursor, or nil when the sequence is
// exhausted.
func (f *FlowState) Current() *Question {
	if f.Cursor < 0 || f.Cursor >= len(f.Sequence) {
		return nil
	}
	q := f.Sequence[f.Cursor]
	return &q
}

// Advance records an answer for the current question and moves the cursor
// forward. If conditional is non-nil it is spliced immediately after the
// current position, at most once: a question with the same ID already in the
// sequence suppresses the insertion, so duplicate answer events cannot grow
// the sequence. Reaching the end of the sequence transitions to submitting.
func (f *FlowState) Advance(questionID, answer string, conditional *Question) error {
	if f.Status != FlowPresenting {
		return ErrFlowClosed
	}

	current := f.Current()
	if current == nil {
		f.Status = FlowSubmitting
		return ErrFlowClosed
	}

	currentID := current.ResolveID(f.Cursor)
	if questionID != "" && questionID != currentID {
		return ErrStaleAnswer
	}

	f.Ledger.Record(currentID, answer)

	if conditional != nil && !f.contains(conditional.ID) {
		spliced := make([]Question, 0, len(f.Sequence)+1)
		spliced = append(spliced, f.Sequence[:f.Cursor+1]...)
		spliced = append(spliced, *conditional)
		spliced = append(spliced, f.Sequence[f.Cursor+1:]...)
		f.Sequence = spliced
	}

	f.Cursor++
	if f.Cursor >= len(f.Sequence) {
		f.Cursor = len(f.Sequence)
		f.Status = FlowSubmitting
	}

	return nil
}

// Progress is the completed fraction of the flow. The denominator includes
// one extra step for the post-question submission stage and is recomputed as
// conditional items grow the sequence; the result stays within [0, 1].
func (f *FlowState) Progress() float64 {
	total := len(f.Sequence) + 1
	if total <= 0 {
		return 0
	}
	p := float64(f.Cursor) / float64(total)
	if f.Status == FlowComplete {
		p = 1
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (f *FlowState) contains(questionID string) bool {
	if questionID == "" {
		return false
	}
	for i, q := range f.Sequence {
		if q.ResolveID(i) == questionID {
			return true
		}
	}
	return false
}
