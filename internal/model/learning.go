package model

// LearningModule is one entry in the static course catalog
type LearningModule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RecommendedModule is a module picked for a user, with the coach's reason
type RecommendedModule struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// LearningPath is the personalized recommendation set for one profile
type LearningPath struct {
	RecommendedModules []RecommendedModule `json:"recommendedModules"`
}
