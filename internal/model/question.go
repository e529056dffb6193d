package model

import "fmt"

// QuestionKind defines how a question is presented and answered
type QuestionKind string

const (
	KindMCQ      QuestionKind = "mcq"      // Single choice from text options
	KindMCQImage QuestionKind = "mcq-img"  // Single choice from image options
	KindLikert   QuestionKind = "likert"   // Agree/Neutral/Disagree rating
	KindTextarea QuestionKind = "textarea" // Free text, empty allowed
	KindTyping   QuestionKind = "typing"   // Type a target sentence exactly, empty allowed
)

// Question is one assessment item. ID is the answer ledger key and must be
// resolvable before the question is shown.
type Question struct {
	ID       string       `json:"id" bson:"id"`
	Round    string       `json:"round" bson:"round"`
	Kind     QuestionKind `json:"kind" bson:"kind"`
	Prompt   string       `json:"prompt" bson:"prompt"`
	Options  []string     `json:"options,omitempty" bson:"options,omitempty"`
	Sentence string       `json:"sentence,omitempty" bson:"sentence,omitempty"` // typing target
	Language string       `json:"language" bson:"language"`
}

// ResolveID returns the question's ID, synthesizing a deterministic one from
// its position when the catalog entry carries none. Positions are zero-based.
func (q *Question) ResolveID(position int) string {
	if q.ID != "" {
		return q.ID
	}
	return fmt.Sprintf("q_pos_%d", position)
}

// AcceptsEmptyAnswer reports whether an empty string is a valid terminal
// answer for this question kind.
func (q *Question) AcceptsEmptyAnswer() bool {
	return q.Kind == KindTextarea || q.Kind == KindTyping
}
