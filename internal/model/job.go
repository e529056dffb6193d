package model

// JobOpportunity is one recommended opening. Location is empty for remote
// listings.
type JobOpportunity struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
}

// JobMatches is the job-mapping output for one aptitude profile
type JobMatches struct {
	LocalOpportunities  []JobOpportunity `json:"localOpportunities"`
	RemoteOpportunities []JobOpportunity `json:"remoteOpportunities"`
}

// JobDescriptionRequest asks for a long-form description of one listed job.
// Description is the short listing text, kept as the fallback.
type JobDescriptionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobDescription is the generated long-form description for one job
type JobDescription struct {
	JobDescription string `json:"jobDescription"`
}
