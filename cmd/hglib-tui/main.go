// Package main is the entry point for the hglib-tui revision browser.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"hglib.dev/hglib/hg"
	"hglib.dev/hglib/internal/tui"
)

func main() {
	dir := flag.String("R", ".", "repository root directory")
	flag.Parse()

	repo := hg.NewRepo(*dir)
	revisions, err := repo.Revisions("", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	// Newest first for browsing.
	for i, j := 0, len(revisions)-1; i < j; i, j = i+1, j-1 {
		revisions[i], revisions[j] = revisions[j], revisions[i]
	}

	p := tea.NewProgram(tui.NewModel(repo, revisions), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
