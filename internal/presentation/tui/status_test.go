package tui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/matchgen/internal/presentation/tui"
)

func TestStatus_PlainOutsideTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := tui.NewStatus(&buf)

	s.Success("wrote %s", "entities_gen.go")
	s.Warn("%d entries", 0)
	s.Fail("boom")

	assert.Equal(t, "✔ wrote entities_gen.go\n! 0 entries\n✘ boom\n", buf.String())
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer(80, false)
	require.NoError(t, err)

	out, err := render("# Matcher\n\n| Key | Value |\n|---|---|\n| `&amp;` | `'&'` |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Matcher")
	assert.Contains(t, out, "&amp;")
}
