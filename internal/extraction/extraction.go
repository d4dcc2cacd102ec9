// Package extraction builds a bounded keyword set from free-form job-posting text.
//
// Extraction is a pipeline of independent heuristic passes, not a unified
// grammar: a dictionary pass with synonym resolution, an acronym pass, three
// skill-phrase regex passes, an experience-duration pass and an
// education-level pass. Each pass can be tuned in isolation; their fixed order
// determines the insertion order of the resulting keyword list.
package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lucasmonteiro/cvmatch/internal/dictionary"
	"github.com/lucasmonteiro/cvmatch/internal/normalize"
)

// MaxKeywords caps the extracted set to bound downstream scoring cost.
const MaxKeywords = 50

// Fragment length bounds for the skill-phrase passes.
const (
	minFragmentLen = 3
	maxFragmentLen = 49
)

var (
	// acronymPattern matches uppercase runs in the original (non-normalized)
	// text, e.g. "SQL" or "CNPJ", with an optional dotted suffix.
	acronymPattern = regexp.MustCompile(`\b[A-Z]{2,}(?:\.[A-Z]+)?\b`)

	// skillContextPattern captures the object of "experiência/conhecimento/
	// domínio em/com/de ...", up to the end of the clause.
	skillContextPattern = regexp.MustCompile(`(?i)(?:experi[êe]ncia|conhecimentos?|dom[íi]nio)\s+(?:em|com|de)\s+([^.;\n]+)`)

	// skillLevelPattern captures a single term qualified by a proficiency or
	// seniority level, e.g. "inglês avançado" or "java sênior".
	skillLevelPattern = regexp.MustCompile(`(?i)([a-zà-ÿ0-9+#.\-]{2,})\s+(?:avan[çc]ado|intermedi[áa]rio|b[áa]sico|expert|s[êe]nior|j[úu]nior|pleno)`)

	// requirementListPattern captures the comma-separated clause after
	// "requisitos:", "desejável:" or "diferencial:".
	requirementListPattern = regexp.MustCompile(`(?i)(?:requisitos|desej[áa]vel|diferenciais?)\s*:\s*([^.;\n]+)`)

	// experienceYearsPattern detects mentions of years of experience.
	experienceYearsPattern = regexp.MustCompile(`(?i)\d+\s*\+?\s*anos?[^.\n]*?experi[êe]ncia`)
)

// provenExperienceKeyword is the fixed keyword added when the posting asks for
// a minimum number of years of experience.
const provenExperienceKeyword = "experiência comprovada"

// ExtractKeywords extracts a deduplicated, size-bounded keyword list from raw
// job-posting text. Insertion order follows pass order (dictionary, acronym,
// skill-phrase, experience-duration, education-level) and is deterministic for
// identical input. Empty or whitespace-only input yields an empty list.
func ExtractKeywords(rawText string) []string {
	normalized := normalize.Text(rawText)
	if normalized == "" {
		return nil
	}

	set := newKeywordSet()

	// 1. Dictionary pass: canonical keyword on direct or synonym containment.
	for _, category := range dictionary.Categories() {
		for _, keyword := range category.Keywords {
			if containsTerm(normalized, keyword) {
				set.add(keyword)
				continue
			}
			for _, synonym := range dictionary.SynonymsOf(keyword) {
				if containsTerm(normalized, normalize.Text(synonym)) {
					set.add(keyword)
					break
				}
			}
		}
	}

	// 2. Acronym pass over the original text; relies on uppercase runs that
	// normalization would destroy.
	for _, token := range acronymPattern.FindAllString(rawText, -1) {
		if utf8.RuneCountInString(token) > 2 {
			set.add(normalize.Text(token))
		}
	}

	// 3. Skill-phrase passes over the original text. Captured fragments are
	// added verbatim (lower-cased, trimmed), without canonical mapping.
	for _, match := range skillContextPattern.FindAllStringSubmatch(rawText, -1) {
		set.addFragments(strings.Split(match[1], ","))
	}
	for _, match := range skillLevelPattern.FindAllStringSubmatch(rawText, -1) {
		set.addFragments(match[1:2])
	}
	for _, match := range requirementListPattern.FindAllStringSubmatch(rawText, -1) {
		set.addFragments(strings.Split(match[1], ","))
	}

	// 4. Experience-duration pass.
	if experienceYearsPattern.MatchString(rawText) {
		set.add(provenExperienceKeyword)
	}

	// 5. Education-level pass against the normalized text.
	for _, level := range dictionary.EducationLevels() {
		if containsTerm(normalized, normalize.Text(level)) {
			set.add(level)
		}
	}

	return set.items
}

// containsTerm reports whether the normalized text contains the normalized
// term. Matching is plain substring containment.
func containsTerm(normalizedText, term string) bool {
	return term != "" && strings.Contains(normalizedText, term)
}

// keywordSet is an insertion-ordered string set capped at MaxKeywords, with
// stop-word and minimum-length filtering applied on insert.
type keywordSet struct {
	seen  map[string]bool
	items []string
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: make(map[string]bool)}
}

func (s *keywordSet) add(keyword string) {
	if len(s.items) >= MaxKeywords || s.seen[keyword] {
		return
	}
	if utf8.RuneCountInString(keyword) <= 2 {
		return
	}
	if dictionary.IsStopWord(normalize.Text(keyword)) {
		return
	}
	s.seen[keyword] = true
	s.items = append(s.items, keyword)
}

// addFragments lower-cases, trims and length-filters raw captured fragments
// before adding them verbatim.
func (s *keywordSet) addFragments(fragments []string) {
	for _, fragment := range fragments {
		cleaned := strings.TrimSpace(strings.ToLower(fragment))
		length := utf8.RuneCountInString(cleaned)
		if length < minFragmentLen || length > maxFragmentLen {
			continue
		}
		s.add(cleaned)
	}
}
