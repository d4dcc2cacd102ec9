package types

// MatchResult holds the outcome of comparing a résumé against the keywords
// extracted from a job description. Matched and Missing preserve the job
// keyword order and together partition the full keyword list.
type MatchResult struct {
	Score   int      `json:"score"` // integer percentage, 0-100
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// SuggestionType classifies what part of the résumé a suggestion targets.
type SuggestionType string

// Suggestion types, in the fixed generation order.
const (
	SuggestionSkill      SuggestionType = "skill"
	SuggestionSummary    SuggestionType = "summary"
	SuggestionExperience SuggestionType = "experience"
	SuggestionKeyword    SuggestionType = "keyword"
)

// SuggestionPriority indicates display priority. The engine does not sort
// across types; suggestions are appended in generation order.
type SuggestionPriority string

// Suggestion priorities.
const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Suggestion is one prioritized, actionable improvement item.
type Suggestion struct {
	Type        SuggestionType     `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action,omitempty"`
	Priority    SuggestionPriority `json:"priority"`
}

// JobAnalysis is the engine's sole externally visible output: one immutable
// compatibility report per analysis call, owned by the caller upon return.
type JobAnalysis struct {
	MatchScore      int          `json:"match_score"`
	MatchedKeywords []string     `json:"matched_keywords"`
	MissingKeywords []string     `json:"missing_keywords"`
	Strengths       []string     `json:"strengths"`
	Improvements    []string     `json:"improvements"`
	Suggestions     []Suggestion `json:"suggestions"`
}
