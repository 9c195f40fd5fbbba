package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestGradient_PreservesText(t *testing.T) {
	out := Gradient("My Notes", "#00FF7F", "#008080")
	assert.Equal(t, "My Notes", ansi.Strip(out))

	assert.Equal(t, "", Gradient(""))
	assert.Equal(t, "plain", Gradient("plain"))
	assert.Equal(t, "bad", Gradient("bad", "not-a-color"))
}

func TestBlendStops_Endpoints(t *testing.T) {
	a, _ := colorful.Hex("#ff0000")
	b, _ := colorful.Hex("#0000ff")
	cols := []colorful.Color{a, b}

	assert.Equal(t, "#ff0000", blendStops(cols, 0).Hex())
	assert.Equal(t, "#0000ff", blendStops(cols, 1).Hex())
	assert.Equal(t, "#ff0000", blendStops(cols[:1], 0.5).Hex())
}
