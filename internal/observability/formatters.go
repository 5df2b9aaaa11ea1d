// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGeneratedContent outputs a human-readable summary of one generation.
func (p *Printer) PrintGeneratedContent(content *types.GeneratedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	if len(content.HookTitles) > 0 {
		sb.WriteString("Hook Titles:\n")
		count := min(len(content.HookTitles), maxItemsToShow)
		for i := 0; i < count; i++ {
			t := content.HookTitles[i]
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", t.Strategy, t.Title))
		}
		if len(content.HookTitles) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.HookTitles)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Meta:     %s\n", content.MetaDescription))
	sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(content.Keywords, ", ")))

	if len(content.TitleErrors) > 0 {
		sb.WriteString("\nWarnings:\n")
		for _, w := range content.TitleErrors {
			sb.WriteString(fmt.Sprintf("  ! %s\n", w))
		}
	}

	p.printBox("Generated Content", sb.String())
}

// PrintAnalysis outputs a human-readable summary of the analysis report.
// Nil facets are reported as skipped.
func (p *Printer) PrintAnalysis(result *types.HFAnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if result.Quality != nil {
		sb.WriteString(fmt.Sprintf("Quality:     %d/100\n", result.Quality.Score))
		for _, issue := range result.Quality.Issues {
			sb.WriteString(fmt.Sprintf("  • %s\n", issue))
		}
	} else {
		sb.WriteString("Quality:     (skipped)\n")
	}

	if result.Readability != nil {
		sb.WriteString(fmt.Sprintf("Readability: %d/100\n", result.Readability.Score))
	} else {
		sb.WriteString("Readability: (skipped)\n")
	}

	if result.SEO != nil {
		sb.WriteString(fmt.Sprintf("Keywords:    %s\n", strings.Join(result.SEO.Keywords, ", ")))
		for _, rec := range result.SEO.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	} else {
		sb.WriteString("Keywords:    (skipped)\n")
	}

	if result.Grammar != nil {
		sb.WriteString(fmt.Sprintf("Typos:       %d found\n", len(result.Grammar.Errors)))
		count := min(len(result.Grammar.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := result.Grammar.Errors[i]
			sb.WriteString(fmt.Sprintf("  • %q → %q (offset %d)\n", e.Original, e.Suggestion, e.Position))
		}
	} else {
		sb.WriteString("Typos:       (skipped)\n")
	}

	p.printBox("Content Analysis", sb.String())
}
