// Package output provides terminal rendering for the hglib CLI.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"hglib.dev/hglib/hg"
)

// Formatter renders typed hg records for the terminal. Colors are only
// emitted when stdout is a TTY with a capable color profile.
type Formatter struct {
	color bool
}

// NewFormatter creates a Formatter with color detection from the
// environment.
func NewFormatter() *Formatter {
	color := isatty.IsTerminal(os.Stdout.Fd()) &&
		termenv.ColorProfile() != termenv.Ascii
	return &Formatter{color: color}
}

func (f *Formatter) styled(colorCode, text string) string {
	if !f.color {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colorCode)).Render(text)
}

// FormatStatus renders a change-code → file-list mapping, fixed codes
// first, one file per line.
func (f *Formatter) FormatStatus(changes map[string][]string) string {
	var b strings.Builder

	writeCode := func(code string) {
		for _, path := range changes[code] {
			line := fmt.Sprintf("%s %s", code, path)
			b.WriteString(f.styled(statusColors[code], line))
			b.WriteString("\n")
		}
	}

	seen := map[string]bool{}
	for _, code := range statusOrder {
		writeCode(code)
		seen[code] = true
	}
	for code := range changes {
		if !seen[code] {
			writeCode(code)
		}
	}
	return b.String()
}

// FormatRevision renders one revision as a multi-line block.
func (f *Formatter) FormatRevision(rev hg.Revision) string {
	var b strings.Builder
	b.WriteString(f.styled("3", fmt.Sprintf("changeset:   %d:%s\n", rev.Rev, rev.Node)))
	if rev.Branch != "default" {
		b.WriteString(fmt.Sprintf("branch:      %s\n", rev.Branch))
	}
	if rev.Tags != "" {
		b.WriteString(fmt.Sprintf("tag:         %s\n", rev.Tags))
	}
	b.WriteString(fmt.Sprintf("user:        %s\n", rev.Author))
	b.WriteString(fmt.Sprintf("date:        %s\n", rev.Date))
	summary, _, _ := strings.Cut(rev.Desc, "\n")
	b.WriteString(fmt.Sprintf("summary:     %s\n", summary))
	return b.String()
}

// FormatBranches renders a branch listing.
func (f *Formatter) FormatBranches(branches []hg.Branch) string {
	var b strings.Builder
	for _, branch := range branches {
		b.WriteString(fmt.Sprintf("%-30s %s\n", f.styled("6", branch.Name), branch.Version))
	}
	return b.String()
}

// FormatBookmarks renders a bookmark listing; the active bookmark is
// marked with an asterisk.
func (f *Formatter) FormatBookmarks(bookmarks []hg.Bookmark) string {
	if len(bookmarks) == 0 {
		return "no bookmarks set\n"
	}
	var b strings.Builder
	for _, bookmark := range bookmarks {
		marker := " "
		if bookmark.Active {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf(" %s %-28s %s\n", marker, f.styled("6", bookmark.Name), bookmark.Location))
	}
	return b.String()
}

// FormatDiff renders per-file diffs with added/removed line coloring.
func (f *Formatter) FormatDiff(diffs []hg.FileDiff) string {
	var b strings.Builder
	for _, diff := range diffs {
		for _, line := range strings.Split(strings.TrimSuffix(diff.Diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
				b.WriteString(f.styled("2", line))
			case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
				b.WriteString(f.styled("1", line))
			case strings.HasPrefix(line, "diff "):
				b.WriteString(f.styled("4", line))
			default:
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatTags renders a tag → short-hash mapping.
func (f *Formatter) FormatTags(tags map[string]string) string {
	var b strings.Builder
	for name, node := range tags {
		b.WriteString(fmt.Sprintf("%-30s %s\n", f.styled("3", name), node))
	}
	return b.String()
}

// FormatPaths renders the configured remotes.
func (f *Formatter) FormatPaths(paths map[string]string) string {
	var b strings.Builder
	for name, location := range paths {
		b.WriteString(fmt.Sprintf("%s = %s\n", f.styled("6", name), location))
	}
	return b.String()
}
