package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status prints one-line outcome messages, coloured when w is a terminal.
type Status struct {
	out *termenv.Output
}

// NewStatus creates a Status writing to w.
func NewStatus(w io.Writer) *Status {
	return &Status{out: termenv.NewOutput(w)}
}

// Success reports a completed step.
func (s *Status) Success(format string, args ...any) {
	s.print("✔", "#4ade80", format, args...)
}

// Warn reports something the user may want to fix.
func (s *Status) Warn(format string, args ...any) {
	s.print("!", "#facc15", format, args...)
}

// Fail reports an error.
func (s *Status) Fail(format string, args ...any) {
	s.print("✘", "#fb7185", format, args...)
}

func (s *Status) print(mark, color, format string, args ...any) {
	p := s.out.ColorProfile()
	prefix := s.out.String(mark).Foreground(p.Color(color)).Bold()
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
