package namespace_test

import (
	"testing"

	"github.com/0glabs/zk-cli/namespace"
	"github.com/0glabs/zk-cli/node"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestRenderPlain(t *testing.T) {
	f := namespace.Formatter{Color: namespace.ColorNever}

	tests := []struct {
		name     string
		node     string
		stat     node.Stat
		expected string
	}{
		{"leaf", "a", node.Stat{}, "a"},
		{"with children", "a", node.Stat{NumChildren: 2}, "a/ "},
		{"with data", "a", node.Stat{DataLength: 4}, "a"},
		{"ephemeral", "lock", node.Stat{Ephemeral: true}, "lock"},
		{"root", "/", node.Stat{NumChildren: 1}, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Render(tt.node, &tt.stat))
		})
	}
}

func TestRenderColored(t *testing.T) {
	f := namespace.Formatter{Color: namespace.ColorAlways}

	expect := func(text string, attrs ...color.Attribute) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.Sprint(text)
	}

	assert.Equal(t, expect("a", color.Bold, color.FgBlue), f.Render("a", &node.Stat{}))
	assert.Equal(t, expect("a/ ", color.Bold, color.FgGreen), f.Render("a", &node.Stat{NumChildren: 1, DataLength: 1}))
	assert.Equal(t, expect("a", color.Bold, color.FgBlue, color.Italic), f.Render("a", &node.Stat{Ephemeral: true}))
	assert.Equal(t, expect("a", color.Bold, color.FgGreen, color.Italic), f.Render("a", &node.Stat{Ephemeral: true, DataLength: 3}))
}
