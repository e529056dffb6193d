package model

import "strings"

// SkillTier is the mandated first-line classification of an aptitude profile
type SkillTier string

const (
	TierBeginner SkillTier = "Beginner"
	TierExplorer SkillTier = "Explorer"
	TierReady    SkillTier = "Ready"
)

const tierPrefix = "Skill Level: "

// ParseProfile splits an aptitude profile into its tier line and narrative.
// The first line must read "Skill Level: <Beginner|Explorer|Ready>"; anything
// else is a protocol violation and ok is false. Downstream readers split on
// the first line break, so the tier line must be parseable on its own.
func ParseProfile(profile string) (tier SkillTier, narrative string, ok bool) {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return "", "", false
	}

	first, rest, found := strings.Cut(profile, "\n")
	if !found {
		return "", "", false
	}

	label := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(first), tierPrefix))
	if !strings.HasPrefix(strings.TrimSpace(first), tierPrefix) {
		return "", "", false
	}

	switch SkillTier(label) {
	case TierBeginner, TierExplorer, TierReady:
		return SkillTier(label), strings.TrimSpace(rest), true
	default:
		return "", "", false
	}
}

// FallbackProfile is the deterministic profile substituted when synthesis
// fails or returns malformed output. It keeps the tier line parseable so
// downstream readers never special-case the failure path.
func FallbackProfile() string {
	return tierPrefix + string(TierExplorer) + "\n" +
		"Based on your answers, you seem to be a curious problem solver who enjoys learning new things. " +
		"Explore the learning modules to build on your strengths, and check the job board for opportunities that match your interests."
}
