package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/seoscore/internal/report"
	"github.com/dotcommander/seoscore/internal/scoring"
)

var familyTitles = map[string]string{
	"seo":               "SEO",
	"readability":       "Readability",
	"relatedKeyword":    "Related keyphrase",
	"inclusiveLanguage": "Inclusive language",
}

// ConsoleFormatter prints a human-readable summary of a report.
type ConsoleFormatter struct {
	w        io.Writer
	colorize bool
}

// NewConsoleFormatter creates a ConsoleFormatter writing to w.
func NewConsoleFormatter(w io.Writer, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{w: w, colorize: colorize}
}

// Format prints every family with one line per result.
func (f *ConsoleFormatter) Format(rep report.Report) error {
	var b strings.Builder
	heading := f.style(lipgloss.NewStyle().Bold(true))

	for i, s := range rep.Sections() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", heading.Render(fmt.Sprintf("%s (%d)", familyTitles[s.Family], len(s.Results))))
		if len(s.Results) == 0 {
			b.WriteString("  no results\n")
			continue
		}
		for _, r := range s.Results {
			fmt.Fprintf(&b, "  %s %s\n", f.bullet(r.Rating), r.Text)
		}
	}

	if _, err := io.WriteString(f.w, b.String()); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

func (f *ConsoleFormatter) bullet(r scoring.Rating) string {
	var symbol, color string
	switch r {
	case scoring.RatingGood:
		symbol, color = "✓", "10" // green
	case scoring.RatingOK:
		symbol, color = "~", "3" // yellow
	case scoring.RatingBad:
		symbol, color = "✗", "9" // red
	default:
		symbol, color = "•", "7" // gray
	}
	return f.style(lipgloss.NewStyle().Foreground(lipgloss.Color(color))).Render(symbol)
}

func (f *ConsoleFormatter) style(s lipgloss.Style) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return s
}
