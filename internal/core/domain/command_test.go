package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandKind_String(t *testing.T) {
	tests := []struct {
		kind CommandKind
		want string
	}{
		{KindFormat, "format"},
		{KindInput, "input"},
		{KindStructural, "structural"},
		{KindSeparator, "separator"},
		{CommandKind(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestCommand_Dispatch(t *testing.T) {
	assert.Equal(t, "bold", Command{ID: "bold"}.Dispatch())
	assert.Equal(t, CommandInsertImage, Command{ID: CommandURLImage, Exec: CommandInsertImage}.Dispatch())
}

func TestCommandTable_Lookup(t *testing.T) {
	table := DefaultCommands()

	c, ok := table.Lookup(CommandCreateLink)
	require.True(t, ok)
	assert.Equal(t, KindInput, c.Kind)
	assert.True(t, c.RequiresSelection)
	assert.Equal(t, "http://", c.PromptDefault)

	// Unknown identifiers pass straight through to the surface.
	c, ok = table.Lookup("justifycenter")
	assert.False(t, ok)
	assert.Equal(t, KindFormat, c.Kind)
	assert.Equal(t, "justifycenter", c.Dispatch())
	assert.Equal(t, "justifycenter", c.Label)
}

func TestDefaultCommands(t *testing.T) {
	table := DefaultCommands()

	for _, id := range ParseButtons(DefaultButtons) {
		_, ok := table[id]
		assert.True(t, ok, "default button %q has no command", id)
	}

	assert.Equal(t, KindSeparator, table[CommandSeparator].Kind)
	assert.Equal(t, KindStructural, table[CommandToggleView].Kind)
	assert.Equal(t, CommandInsertImage, table[CommandURLImage].Dispatch())
	assert.NotNil(t, table[CommandForeColor].Validate)
	assert.NotNil(t, table[CommandForeColor].Canonical)
}

func TestIsColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"ff0000", true},
		{"#FF0000", true},
		{"#123456", true},
		{"#abcdeF", true},
		{"123456", false},
		{"red", false},
		{"#12345", false},
		{"#1234567", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsColor(tt.value))
		})
	}
}

func TestCanonicalColor(t *testing.T) {
	assert.Equal(t, "#ff0000", CanonicalColor("FF0000"))
	assert.Equal(t, "#abcdef", CanonicalColor("#ABCDEF"))
}

func TestPalette_Shape(t *testing.T) {
	require.Len(t, Palette, 5)
	for _, row := range Palette {
		assert.Len(t, row, 8)
		for _, c := range row {
			assert.True(t, IsColor(c), c)
		}
	}
}

func TestCommand_BlankNotice(t *testing.T) {
	table := DefaultCommands()

	assert.Equal(t, "Please enter a URL.", table[CommandCreateLink].BlankNotice())
	assert.Equal(t, "Please enter a URL.", table[CommandURLImage].BlankNotice())
	assert.Equal(t, table[CommandForeColor].InvalidNotice, table[CommandForeColor].BlankNotice())
	assert.Empty(t, table["bold"].BlankNotice())
}
