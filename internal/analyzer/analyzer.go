// Package analyzer is the entry point of the compatibility analysis engine.
//
// Analyze wires the extraction, scoring, insight and suggestion stages into a
// single synchronous call. The engine is purely functional over its inputs:
// it reads only the static dictionary tables and the arguments, holds no
// state between calls and never fails: degenerate inputs produce a
// well-formed minimal report. Independent calls are safe to run concurrently.
package analyzer

import (
	"strings"
	"unicode/utf8"

	"github.com/lucasmonteiro/cvmatch/internal/extraction"
	"github.com/lucasmonteiro/cvmatch/internal/insights"
	"github.com/lucasmonteiro/cvmatch/internal/scoring"
	"github.com/lucasmonteiro/cvmatch/internal/suggestions"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

// minJobDescriptionLen is the minimum trimmed job-description length (in
// characters) worth analyzing.
const minJobDescriptionLen = 20

// Surfacing limits for the keyword lists in the final report. Scoring and
// insight generation always see the full lists; only the report is truncated.
const (
	maxMatchedSurfaced = 20
	maxMissingSurfaced = 15
)

// shortDescriptionImprovement is the only content of a report produced for a
// too-short job description.
const shortDescriptionImprovement = "Descrição da vaga muito curta. Cole o texto completo da vaga para uma análise precisa."

// Analyze runs the full compatibility analysis of a résumé against raw
// job-posting text and returns the report. The résumé is read-only input; the
// returned report is owned by the caller and the engine retains no reference
// to it. Output is deterministic for identical inputs.
func Analyze(resume *types.ResumeRecord, jobDescription string) *types.JobAnalysis {
	if utf8.RuneCountInString(strings.TrimSpace(jobDescription)) < minJobDescriptionLen {
		return &types.JobAnalysis{
			MatchScore:      0,
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			Strengths:       []string{},
			Improvements:    []string{shortDescriptionImprovement},
			Suggestions:     []types.Suggestion{},
		}
	}

	jobKeywords := extraction.ExtractKeywords(jobDescription)
	match := scoring.Score(resume.FlatText(), jobKeywords)

	return &types.JobAnalysis{
		MatchScore:      match.Score,
		MatchedKeywords: firstN(match.Matched, maxMatchedSurfaced),
		MissingKeywords: firstN(match.Missing, maxMissingSurfaced),
		Strengths:       insights.Strengths(resume, &match),
		Improvements:    insights.Improvements(resume, &match),
		Suggestions:     suggestions.Build(resume, jobKeywords, match.Missing),
	}
}

// firstN returns at most the first n entries of items.
func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
