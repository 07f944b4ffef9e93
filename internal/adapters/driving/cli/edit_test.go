package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/editable/internal/core/domain"
)

func newTestCmd(input string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetContext(context.Background())
	return cmd, buf
}

func TestEditCmd_Flags(t *testing.T) {
	assert.Equal(t, "edit [name]", editCmd.Use)
	assert.NotNil(t, editCmd.Flags().Lookup("file"))
	assert.NotNil(t, editCmd.Flags().Lookup("flavor"))
}

func TestEditCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand("edit")

	assert.ErrorIs(t, err, errEditorNotConfigured)
}

func TestEditCmd_InvalidFlavor(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("edit", "--flavor", "presto")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoadSeed(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	existing := seedDocument(t, "notes", "<p>stored</p>")

	path := filepath.Join(t.TempDir(), "seed.html")
	require.NoError(t, os.WriteFile(path, []byte("<p>from file</p>\n"), 0o600))

	tests := []struct {
		name     string
		ref      string
		file     string
		input    string
		seed     string
		saveName string
	}{
		{"nothing", "", "", "", "", ""},
		{"stored by name", "notes", "", "", "<p>stored</p>", "notes"},
		{"stored by id", existing, "", "", "<p>stored</p>", "notes"},
		{"new name starts empty", "fresh", "", "", "", "fresh"},
		{"file", "", path, "", "<p>from file</p>", ""},
		{"file seeds a name", "notes", path, "", "<p>from file</p>", "notes"},
		{"stdin", "", "-", "<p>piped</p>\n", "<p>piped</p>", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, _ := newTestCmd(tc.input)

			seed, name, err := loadSeed(cmd, tc.ref, tc.file)

			require.NoError(t, err)
			assert.Equal(t, tc.seed, seed)
			assert.Equal(t, tc.saveName, name)
		})
	}
}

func TestLoadSeed_NoDocumentService(t *testing.T) {
	SetServices(nil)
	cmd, _ := newTestCmd("")

	_, _, err := loadSeed(cmd, "notes", "")

	assert.ErrorIs(t, err, errDocumentsNotConfigured)
}

func TestEditorOptions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, settingsService.SetFlavor(domain.FlavorWebKit))
	require.NoError(t, settingsService.SetButtons("bold,toggleview"))

	opts, err := editorOptions("")
	require.NoError(t, err)
	assert.Equal(t, domain.FlavorWebKit, opts.Flavor)
	assert.Equal(t, []string{"bold", "toggleview"}, opts.Buttons)

	opts, err = editorOptions("TRIDENT")
	require.NoError(t, err)
	assert.Equal(t, domain.FlavorTrident, opts.Flavor)

	_, err = editorOptions("presto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEditorOptions_NoSettings(t *testing.T) {
	SetServices(nil)

	opts, err := editorOptions("")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultEditorOptions(), opts)
}

func TestStoreResult(t *testing.T) {
	t.Run("named document is saved", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()
		cmd, buf := newTestCmd("")

		require.NoError(t, storeResult(cmd, "notes", "", "<b>x</b>"))

		assert.Contains(t, buf.String(), "Saved notes (revision ")
		doc, err := documentService.Resolve(context.Background(), "notes")
		require.NoError(t, err)
		assert.Equal(t, "<strong>x</strong>", doc.Content)
	})

	t.Run("file is written back", func(t *testing.T) {
		cleanup := setupTestServices()
		defer cleanup()
		cmd, buf := newTestCmd("")
		path := filepath.Join(t.TempDir(), "out.html")

		require.NoError(t, storeResult(cmd, "", path, "<p>x</p>"))

		assert.Contains(t, buf.String(), "Wrote "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<p>x</p>\n", string(data))
	})

	t.Run("otherwise printed", func(t *testing.T) {
		for _, file := range []string{"", "-"} {
			cmd, buf := newTestCmd("")
			require.NoError(t, storeResult(cmd, "", file, "<p>x</p>"))
			assert.Equal(t, "<p>x</p>\n", buf.String())
		}
	})

	t.Run("named document without store", func(t *testing.T) {
		SetServices(nil)
		cmd, _ := newTestCmd("")
		assert.ErrorIs(t, storeResult(cmd, "notes", "", "x"), errDocumentsNotConfigured)
	})
}

func TestEditorFactory_BuildsSession(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	session, err := newEditor("<B>seed</B>", domain.DefaultEditorOptions())
	require.NoError(t, err)
	defer session.Editor.Close()

	assert.Equal(t, "<strong>seed</strong>", session.Editor.Document())
	assert.Equal(t, "<strong>seed</strong>", session.Plain.Value())
	assert.Equal(t, "seed", session.Canvas.Text())
}
