package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/internal/model"
)

func TestBaseSequenceEveryLanguage(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(lang, func(t *testing.T) {
			seq := BaseSequence(lang)
			require.NotEmpty(t, seq)

			seen := map[string]bool{}
			for _, q := range seq {
				assert.NotEmpty(t, q.ID, "every catalog item carries an ID")
				assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
				seen[q.ID] = true
				assert.NotEmpty(t, q.Prompt)
				assert.Equal(t, lang, q.Language)
			}
			assert.True(t, seen[BranchQuestionID], "branch question present")
		})
	}
}

func TestBaseSequenceUnknownLanguageFallsBack(t *testing.T) {
	seq := BaseSequence("fr")
	en := BaseSequence("en")
	require.Equal(t, len(en), len(seq))
	for i := range seq {
		assert.Equal(t, en[i].ID, seq[i].ID)
		assert.Equal(t, en[i].Prompt, seq[i].Prompt)
	}
}

func TestBaseSequenceStableOrder(t *testing.T) {
	a := BaseSequence("en")
	b := BaseSequence("en")
	require.Equal(t, a, b)

	// Mutating a returned sequence must not leak into the catalog.
	a[0].Prompt = "mutated"
	c := BaseSequence("en")
	assert.NotEqual(t, "mutated", c[0].Prompt)
}

func TestConditionalFor(t *testing.T) {
	tests := []struct {
		name   string
		lang   string
		answer string
		wantID string
	}{
		{"teach others gets freelance task", "en", "Teach others", "q5_freelance"},
		{"earn from home gets creative", "en", "Earn from home", "q5_creative"},
		{"start a shop gets business", "en", "Start a shop", "q5_business"},
		{"office work gets tech", "en", "Work in an office", "q5_tech"},
		{"hindi teach others", "hi", "दूसरों को सिखाना", "q5_freelance"},
		{"kannada shop", "kn", "ಅಂಗಡಿ ಪ್ರಾರಂಭಿಸುವುದು", "q5_business"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ConditionalFor(tt.lang, tt.answer)
			require.NotNil(t, q)
			assert.Equal(t, tt.wantID, q.ID)
			assert.Equal(t, model.KindMCQ, q.Kind)
			assert.NotEmpty(t, q.Options)
		})
	}
}

func TestConditionalForUnknownAnswer(t *testing.T) {
	assert.Nil(t, ConditionalFor("en", "Become an astronaut"))
	assert.Nil(t, ConditionalFor("en", ""))
	assert.Nil(t, ConditionalFor("hi", "Teach others")) // english option against the hindi catalog
}

func TestConditionalForUnknownLanguageUsesDefault(t *testing.T) {
	q := ConditionalFor("zz", "Teach others")
	require.NotNil(t, q)
	assert.Equal(t, "q5_freelance", q.ID)
}

func TestConditionalForReturnsCopy(t *testing.T) {
	q1 := ConditionalFor("en", "Teach others")
	require.NotNil(t, q1)
	q1.Prompt = "mutated"

	q2 := ConditionalFor("en", "Teach others")
	require.NotNil(t, q2)
	assert.NotEqual(t, "mutated", q2.Prompt)
}
