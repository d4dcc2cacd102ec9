// Package scoring computes the résumé/job-keyword compatibility score.
package scoring

import (
	"math"
	"strings"

	"github.com/lucasmonteiro/cvmatch/internal/dictionary"
	"github.com/lucasmonteiro/cvmatch/internal/normalize"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

// neutralScore is returned when no keywords were extracted from the job
// description: the résumé cannot be evaluated, so the score is neither good
// nor bad.
const neutralScore = 50

// importantKeywordCount bounds the leading subset of job keywords that earns
// the importance bonus. Callers order job keywords by importance before
// scoring; in practice that order is the extraction insertion order.
const importantKeywordCount = 10

// maxBonus is the largest score bonus the important subset can add.
const maxBonus = 10

// Score compares a flattened résumé text against the job keyword list,
// preserving keyword order. Every keyword is classified as matched or missing
// (direct containment first, then synonym fallback); the two lists partition
// the input exactly. The returned score is an integer in [0,100] and the
// function is pure and deterministic.
func Score(resumeFlatText string, jobKeywords []string) types.MatchResult {
	normalized := normalize.Text(resumeFlatText)

	matched := make([]string, 0, len(jobKeywords))
	missing := make([]string, 0, len(jobKeywords))
	matchedSet := make(map[string]bool, len(jobKeywords))

	for _, keyword := range jobKeywords {
		if resumeContains(normalized, keyword) {
			matched = append(matched, keyword)
			matchedSet[keyword] = true
		} else {
			missing = append(missing, keyword)
		}
	}

	if len(jobKeywords) == 0 {
		return types.MatchResult{Score: neutralScore, Matched: matched, Missing: missing}
	}

	baseScore := int(math.Round(100 * float64(len(matched)) / float64(len(jobKeywords))))

	// Bonus for the leading (most important) keywords.
	importantCount := min(importantKeywordCount, len(jobKeywords))
	importantMatched := 0
	for _, keyword := range jobKeywords[:importantCount] {
		if matchedSet[keyword] {
			importantMatched++
		}
	}
	bonus := int(math.Round(maxBonus * float64(importantMatched) / float64(importantCount)))

	return types.MatchResult{
		Score:   min(100, baseScore+bonus),
		Matched: matched,
		Missing: missing,
	}
}

// resumeContains reports whether the normalized résumé text contains the
// keyword directly or through any of its registered synonyms.
func resumeContains(normalizedResume, keyword string) bool {
	if strings.Contains(normalizedResume, normalize.Text(keyword)) {
		return true
	}
	for _, synonym := range dictionary.SynonymsOf(keyword) {
		if strings.Contains(normalizedResume, normalize.Text(synonym)) {
			return true
		}
	}
	return false
}
