package namespace

import (
	"github.com/0glabs/zk-cli/node"
	"github.com/fatih/color"
)

// ColorMode controls whether rendered entries carry terminal styling.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // styled when stdout is a terminal
	ColorAlways                  // always styled
	ColorNever                   // plain text
)

// ChildMarker is appended to the display name of nodes that have children.
const ChildMarker = "/ "

// Formatter renders node names for display.
type Formatter struct {
	Color ColorMode
}

// Render returns the display form of a node: the name, a trailing marker when
// it has children, bold blue by default, green when it holds data and italic
// when it is ephemeral.
func (f Formatter) Render(name string, stat *node.Stat) string {
	text := name
	if stat.HasChildren() && name != node.RootPath {
		text += ChildMarker
	}

	fg := color.FgBlue
	if stat.HasData() {
		fg = color.FgGreen
	}

	style := color.New(color.Bold, fg)
	if stat.Ephemeral {
		style.Add(color.Italic)
	}

	switch f.Color {
	case ColorAlways:
		style.EnableColor()
	case ColorNever:
		style.DisableColor()
	}

	return style.Sprint(text)
}
