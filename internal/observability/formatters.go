// Package observability renders capability results as boxed summaries for
// the CLI's --pretty mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// clip shortens s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, clip(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to limit bulleted items under a heading.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", heading)
	for _, item := range items[:min(len(items), limit)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-limit)
	}
	sb.WriteString("\n")
}

// scoreBar renders a 0..100 score as a 20-cell bar.
func scoreBar(score int) string {
	filled := min(max(score, 0), 100) / 5
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// PrintAudit outputs a resume audit.
func (p *Printer) PrintAudit(audit types.AuditResult) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %3d  %s\n\n", audit.Score, scoreBar(audit.Score))
	if audit.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", audit.Summary)
	}
	writeList(&sb, "Strengths", audit.Strengths, maxItemsToShow)
	writeList(&sb, "Improvements", audit.Improvements, maxItemsToShow)

	p.printBox("RESUME AUDIT", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintJobMatch outputs a job match analysis.
func (p *Printer) PrintJobMatch(match types.JobMatch) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Match: %3d%% %s\n\n", match.MatchScore, scoreBar(match.MatchScore))
	if match.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", match.Summary)
	}
	writeList(&sb, "Matching skills", match.MatchingSkills, maxItemsToShow)
	writeList(&sb, "Missing skills", match.MissingSkills, maxItemsToShow)
	writeList(&sb, "Recommendations", match.Recommendations, 3)

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintCareerPaths outputs suggested next roles.
func (p *Printer) PrintCareerPaths(paths []types.CareerPath) {
	if len(paths) == 0 {
		p.printBox("CAREER PATHS", "No suggestions available right now.")
		return
	}

	var sb strings.Builder
	count := min(len(paths), maxItemsToShow)
	for i, path := range paths[:count] {
		fmt.Fprintf(&sb, "#%d  %s (%d%% match)\n", i+1, path.Title, path.MatchPercentage)
		if path.SalaryRange != "" || path.Timeline != "" {
			fmt.Fprintf(&sb, "    %s · %s\n", path.SalaryRange, path.Timeline)
		}
		if len(path.RequiredSkills) > 0 {
			fmt.Fprintf(&sb, "    Skills: %s\n", strings.Join(path.RequiredSkills, ", "))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(paths) > maxItemsToShow {
		fmt.Fprintf(&sb, "\n... and %d more paths", len(paths)-maxItemsToShow)
	}

	p.printBox("CAREER PATHS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviewQuestions outputs interview questions grouped as listed.
func (p *Printer) PrintInterviewQuestions(questions []types.InterviewQuestion) {
	if len(questions) == 0 {
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, q.Category, q.Question)
		if q.Tip != "" {
			fmt.Fprintf(&sb, "   Tip: %s\n", q.Tip)
		}
		if i < len(questions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChatReply outputs the routed chat action and reply text.
func (p *Printer) PrintChatReply(reply types.ChatReply) {
	if reply == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Action: %s\n\n%s", reply.Action(), reply.Reply())
	switch r := reply.(type) {
	case types.JobSuggestion:
		fmt.Fprintf(&sb, "\n\nSearch: %s", r.SearchQuery.Query)
		if r.SearchQuery.Location != "" {
			fmt.Fprintf(&sb, " in %s", r.SearchQuery.Location)
		}
	case types.ResumeUpdate:
		fmt.Fprintf(&sb, "\n\nResume now has %d positions and %d skills",
			len(r.UpdatedResume.Experience), len(r.UpdatedResume.Skills))
	}

	p.printBox("ASSISTANT", sb.String())
}

// Print dispatches on the result type. It reports false for types without a
// boxed rendering.
func (p *Printer) Print(v any) bool {
	switch r := v.(type) {
	case types.AuditResult:
		p.PrintAudit(r)
	case types.JobMatch:
		p.PrintJobMatch(r)
	case []types.CareerPath:
		p.PrintCareerPaths(r)
	case []types.InterviewQuestion:
		p.PrintInterviewQuestions(r)
	case types.ChatReply:
		p.PrintChatReply(r)
	default:
		return false
	}
	return true
}
