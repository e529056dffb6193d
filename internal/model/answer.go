package model

import (
	"fmt"
	"strings"
)

// AnswerLedger accumulates responses keyed by question ID. Entries are added
// or overwritten as the flow advances and are never removed.
type AnswerLedger map[string]string

// Record stores an answer under the question's ID. Empty values are kept:
// free-text and typing questions accept the empty string as a valid answer.
func (l AnswerLedger) Record(questionID, answer string) {
	l[questionID] = answer
}

// Has reports whether an answer exists for the given question ID.
func (l AnswerLedger) Has(questionID string) bool {
	_, ok := l[questionID]
	return ok
}

// Snapshot serializes the ledger in question order for the synthesis prompt.
// Questions without a recorded answer are skipped; the language code is
// appended last so the model answers in the user's language.
func (l AnswerLedger) Snapshot(sequence []Question, language string) string {
	var b strings.Builder
	for i, q := range sequence {
		answer, ok := l[q.ResolveID(i)]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "Question %d [%s]: %s - Answer: %s\n", i+1, q.Round, q.Prompt, answer)
	}
	fmt.Fprintf(&b, "Language: %s", language)
	return b.String()
}

// SubmitAnswerRequest is the body for POST /v1/assessment/answers.
type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// SubmitAnswerResponse reports the flow position after an answer is recorded.
type SubmitAnswerResponse struct {
	Status   FlowStatus `json:"status"`
	Done     bool       `json:"done"`
	Progress float64    `json:"progress"`
	Next     *Question  `json:"next,omitempty"`
}

// AssessmentState is the client view of the flow for GET current-question.
type AssessmentState struct {
	Status   FlowStatus `json:"status"`
	Done     bool       `json:"done"`
	Progress float64    `json:"progress"`
	Question *Question  `json:"question,omitempty"`
}

// ProfileView is the parsed persisted profile returned to the client
type ProfileView struct {
	SkillLevel string `json:"skillLevel"`
	Summary    string `json:"summary"`
	Profile    string `json:"profile"`
}
