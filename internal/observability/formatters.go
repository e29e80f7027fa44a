// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
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

// PrintParsedResume outputs a human-readable summary of the parsed signals.
func (p *Printer) PrintParsedResume(parsed *types.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	if parsed.Contact.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", parsed.Contact.Name))
	}
	if parsed.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", parsed.Contact.Email))
	}
	if parsed.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", parsed.Contact.Phone))
	}
	sb.WriteString("\n")

	kinds := make([]string, 0, len(parsed.Sections))
	for _, section := range parsed.Sections {
		kinds = append(kinds, string(section.Kind))
	}
	sb.WriteString(fmt.Sprintf("Sections: %s\n", joinOrNone(kinds)))
	sb.WriteString(fmt.Sprintf("Keywords: %s\n", truncateList(parsed.Keywords)))
	sb.WriteString(fmt.Sprintf("Metrics:  %s\n", truncateList(parsed.Metrics)))

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintScore outputs a human-readable score breakdown.
func (p *Printer) PrintScore(score types.ATSScore) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:    %d/100\n", score.OverallScore))
	sb.WriteString(fmt.Sprintf("Keywords:   %d\n", score.KeywordScore))
	sb.WriteString(fmt.Sprintf("Formatting: %d\n", score.FormattingScore))
	sb.WriteString(fmt.Sprintf("Content:    %d\n", score.ContentScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Matched:  %s\n", truncateList(score.MatchedKeywords)))
	sb.WriteString(fmt.Sprintf("Missing:  %s\n", truncateList(score.MissingKeywords)))

	p.printBox("ATS Score", strings.TrimRight(sb.String(), "\n"))

	if len(score.Suggestions) > 0 {
		p.printBox("Suggestions", strings.Join(score.Suggestions, "\n"))
	}
}

// PrintMatches outputs a ranked summary of job matches.
func (p *Printer) PrintMatches(matches []types.JobMatch) {
	if len(matches) == 0 {
		p.printBox("Job Matches", "no matches")
		return
	}

	var sb strings.Builder
	for i, match := range matches {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(matches)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. [%3d] %s", i+1, match.MatchScore, match.Job.Title))
		if match.Job.Company != "" {
			sb.WriteString(" — " + match.Job.Company)
		}
		sb.WriteString("\n")
		for _, reason := range match.MatchReasons {
			sb.WriteString("     " + reason + "\n")
		}
	}

	p.printBox("Job Matches", strings.TrimRight(sb.String(), "\n"))
}

func truncateList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	if len(items) > maxItemsToShow {
		return strings.Join(items[:maxItemsToShow], ", ") + fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
	}
	return strings.Join(items, ", ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
