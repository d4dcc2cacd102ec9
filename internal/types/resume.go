// Package types provides type definitions for structured data used throughout the cvmatch system.
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeRecord is the structured résumé supplied by the caller. The engine
// treats it as read-only input and never mutates it.
type ResumeRecord struct {
	FullName    string       `json:"full_name" validate:"required,min=1"`
	Title       string       `json:"title,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Skills      string       `json:"skills,omitempty"` // comma-separated list
	Experiences []Experience `json:"experiences,omitempty" validate:"dive"`
	Education   []Education  `json:"education,omitempty" validate:"dive"`
	Languages   []Language   `json:"languages,omitempty" validate:"dive"`
}

// Experience represents one professional experience entry.
type Experience struct {
	Role        string `json:"role" validate:"required,min=1"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents one education entry.
type Education struct {
	Degree      string `json:"degree" validate:"required,min=1"`
	School      string `json:"school,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Language represents a spoken language and its proficiency level.
type Language struct {
	Name  string `json:"name" validate:"required,min=1"`
	Level string `json:"level,omitempty"`
}

// Validate validates the ResumeRecord using the validator.
func (r *ResumeRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SkillList splits the comma-separated skills string into trimmed, non-empty
// entries.
func (r *ResumeRecord) SkillList() []string {
	if strings.TrimSpace(r.Skills) == "" {
		return nil
	}

	parts := strings.Split(r.Skills, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	return skills
}

// FlatText concatenates every free-text résumé field into a single string for
// normalization and containment testing.
func (r *ResumeRecord) FlatText() string {
	var sb strings.Builder

	write := func(s string) {
		if s == "" {
			return
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s)
	}

	write(r.Title)
	write(r.Summary)
	write(r.Skills)
	for _, exp := range r.Experiences {
		write(exp.Role)
		write(exp.Company)
		write(exp.Description)
	}
	for _, edu := range r.Education {
		write(edu.Degree)
		write(edu.School)
		write(edu.Description)
	}
	for _, lang := range r.Languages {
		write(lang.Name)
		write(lang.Level)
	}

	return sb.String()
}
