package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineFor(out, id string) string {
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 2 && strings.HasPrefix(line[2:], id+" ") {
			return line
		}
	}
	return ""
}

func TestCommandsCmd_Defaults(t *testing.T) {
	SetServices(nil)

	out, err := executeCommand("commands")

	require.NoError(t, err)
	assert.Contains(t, out, "KIND")
	assert.True(t, strings.HasPrefix(lineFor(out, "bold"), "* "), "bold is on the default toolbar")
	assert.True(t, strings.HasPrefix(lineFor(out, "forecolor"), "  "), "forecolor is not")
	assert.Contains(t, lineFor(out, "createlink"), "Add Hyperlink (Enter URL)")
	assert.Contains(t, lineFor(out, "toggleview"), "structural")
}

func TestCommandsCmd_UsesSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, settingsService.SetLabel("bold", "Strong"))
	require.NoError(t, settingsService.SetButtons("italic,forecolor"))

	out, err := executeCommand("commands")

	require.NoError(t, err)
	assert.Contains(t, lineFor(out, "bold"), "Strong")
	assert.True(t, strings.HasPrefix(lineFor(out, "bold"), "  "))
	assert.True(t, strings.HasPrefix(lineFor(out, "forecolor"), "* "))
}

func TestCommandsCmd_HiddenToolbar(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, settingsService.SetToolbar(false))

	out, err := executeCommand("commands")

	require.NoError(t, err)
	assert.NotContains(t, out, "* ")
}
