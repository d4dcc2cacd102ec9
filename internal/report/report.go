// Package report renders a JobAnalysis as formatted terminal output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lucasmonteiro/cvmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted report output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a compatibility analysis.
func (p *Printer) PrintAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	p.printScore(analysis)
	p.printKeywords(analysis)
	p.printSentences("PONTOS FORTES", analysis.Strengths)
	p.printSentences("MELHORIAS", analysis.Improvements)
	p.printSuggestions(analysis.Suggestions)
}

func (p *Printer) printScore(analysis *types.JobAnalysis) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compatibilidade: %d%%\n", analysis.MatchScore))
	sb.WriteString(fmt.Sprintf("Palavras-chave encontradas: %d\n", len(analysis.MatchedKeywords)))
	sb.WriteString(fmt.Sprintf("Palavras-chave ausentes:    %d", len(analysis.MissingKeywords)))
	p.printBox("ANÁLISE DE COMPATIBILIDADE", sb.String())
}

func (p *Printer) printKeywords(analysis *types.JobAnalysis) {
	if len(analysis.MatchedKeywords) == 0 && len(analysis.MissingKeywords) == 0 {
		return
	}

	var sb strings.Builder

	if len(analysis.MatchedKeywords) > 0 {
		sb.WriteString("Encontradas:\n")
		count := min(len(analysis.MatchedKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.MatchedKeywords[i]))
		}
		if len(analysis.MatchedKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... e mais %d\n", len(analysis.MatchedKeywords)-maxItemsToShow))
		}
	}

	if len(analysis.MissingKeywords) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Ausentes:\n")
		count := min(len(analysis.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.MissingKeywords[i]))
		}
		if len(analysis.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... e mais %d\n", len(analysis.MissingKeywords)-maxItemsToShow))
		}
	}

	p.printBox("PALAVRAS-CHAVE", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) printSentences(title string, sentences []string) {
	if len(sentences) == 0 {
		return
	}

	var sb strings.Builder
	for i, sentence := range sentences {
		sb.WriteString(fmt.Sprintf("• %s", sentence))
		if i < len(sentences)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, sb.String())
}

func (p *Printer) printSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, suggestion := range suggestions {
		sb.WriteString(fmt.Sprintf("[%s] %s\n", strings.ToUpper(string(suggestion.Priority)), suggestion.Title))
		sb.WriteString(fmt.Sprintf("    %s\n", suggestion.Description))
		if suggestion.Action != "" {
			sb.WriteString(fmt.Sprintf("    → %s\n", suggestion.Action))
		}
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGESTÕES", strings.TrimSuffix(sb.String(), "\n"))
}
