package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge/internal/ai"
	"skillbridge/internal/model"
)

func profiledUser() *model.User {
	return &model.User{ID: "user_1", AptitudeProfile: "Skill Level: Ready\nGood with numbers."}
}

func TestJobMatchesFromGeneratorOutput(t *testing.T) {
	gen := &countingGenerator{output: "```json\n" + `{"localOpportunities":[{"title":"Shop Assistant","company":"Kumar Stores","location":"Mysuru","description":"Billing and stock."}],"remoteOpportunities":[]}` + "\n```"}
	insights := newMemInsightCache()
	svc := NewJobService(gen, newMemUserRepo(profiledUser()), insights, time.Second, nil)
	ctx := context.Background()

	matches, err := svc.Matches(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, matches.LocalOpportunities, 1)
	assert.Equal(t, "Shop Assistant", matches.LocalOpportunities[0].Title)

	// Second call must be served from cache.
	_, err = svc.Matches(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 1, gen.calls)
}

func TestJobMatchesFallsBackOnBadOutput(t *testing.T) {
	cases := []struct {
		name string
		gen  *countingGenerator
	}{
		{"transport error", &countingGenerator{err: errors.New("quota exceeded")}},
		{"malformed json", &countingGenerator{output: "sorry, I cannot do that"}},
		{"empty lists", &countingGenerator{output: `{"localOpportunities":[],"remoteOpportunities":[]}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewJobService(tc.gen, newMemUserRepo(profiledUser()), newMemInsightCache(), time.Second, nil)

			matches, err := svc.Matches(context.Background(), "user_1")
			require.NoError(t, err)
			assert.NotEmpty(t, matches.LocalOpportunities)
			assert.NotEmpty(t, matches.RemoteOpportunities)
		})
	}
}

func TestJobMatchesRequiresProfile(t *testing.T) {
	svc := NewJobService(nil, newMemUserRepo(&model.User{ID: "user_1"}), newMemInsightCache(), time.Second, nil)

	_, err := svc.Matches(context.Background(), "user_1")
	assert.ErrorIs(t, err, ErrProfileNotReady)

	_, err = svc.Matches(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrSessionInvalid)
}

func TestJobDescriptionFromGeneratorOutput(t *testing.T) {
	var gotPrompt string
	gen := ai.GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "A detailed day in the life of a shop assistant.", nil
	})
	svc := NewJobService(gen, newMemUserRepo(), newMemInsightCache(), time.Second, nil)

	desc := svc.Description(context.Background(), &model.JobDescriptionRequest{
		Title:       "Shop Assistant",
		Description: "Billing and stock.",
	})

	assert.Equal(t, "A detailed day in the life of a shop assistant.", desc.JobDescription)
	assert.Contains(t, gotPrompt, "Shop Assistant")
}

func TestJobDescriptionFallsBackToListingText(t *testing.T) {
	cases := []struct {
		name string
		gen  *countingGenerator
	}{
		{"generation error", &countingGenerator{err: errors.New("quota exceeded")}},
		{"disabled generator", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var svc *JobService
			if tc.gen != nil {
				svc = NewJobService(tc.gen, newMemUserRepo(), newMemInsightCache(), time.Second, nil)
			} else {
				svc = NewJobService(nil, newMemUserRepo(), newMemInsightCache(), time.Second, nil)
			}

			desc := svc.Description(context.Background(), &model.JobDescriptionRequest{
				Title:       "Online Tutor",
				Description: "Teach school subjects over video calls.",
			})

			assert.Contains(t, desc.JobDescription, "Teach school subjects over video calls.")
			assert.Contains(t, desc.JobDescription, "(Could not load full description.)")
		})
	}
}

func TestLearningPathCapsRecommendations(t *testing.T) {
	gen := &countingGenerator{output: `{"recommendedModules":[` +
		`{"title":"Digital Literacy Basics","reason":"a"},` +
		`{"title":"Financial Management","reason":"b"},` +
		`{"title":"Effective Communication","reason":"c"},` +
		`{"title":"Vocational Skills: Tailoring","reason":"d"},` +
		`{"title":"Digital Literacy Basics","reason":"e"}]}`}
	svc := NewLearningService(gen, newMemUserRepo(profiledUser()), newMemInsightCache(), time.Second, nil)

	path, err := svc.Path(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Len(t, path.RecommendedModules, 4)
}

func TestLearningPathDisabledGeneratorUsesDefaults(t *testing.T) {
	svc := NewLearningService(nil, newMemUserRepo(profiledUser()), newMemInsightCache(), time.Second, nil)

	path, err := svc.Path(context.Background(), "user_1")
	require.NoError(t, err)
	assert.NotEmpty(t, path.RecommendedModules)
}

func TestLearningModulesIsACopy(t *testing.T) {
	svc := NewLearningService(nil, newMemUserRepo(), newMemInsightCache(), time.Second, nil)

	modules := svc.Modules()
	require.NotEmpty(t, modules)
	modules[0].Title = "mutated"

	assert.NotEqual(t, "mutated", svc.Modules()[0].Title)
}

func TestStripCodeFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, stripCodeFences(in))
	}
}
