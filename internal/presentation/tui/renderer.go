package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// With styled false it uses the "notty" style, which keeps the text plain
// for pipes and files.
func NewRenderer(width int, styled bool) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	if styled {
		opts = append(opts, glamour.WithAutoStyle()) // Automatically detect light/dark background
	} else {
		opts = append(opts, glamour.WithStandardStyle("notty"))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
