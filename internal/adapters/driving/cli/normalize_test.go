package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCmd_Use(t *testing.T) {
	assert.Equal(t, "normalize [file]", normalizeCmd.Use)
	assert.NotNil(t, normalizeCmd.Flags().Lookup("check"))
	assert.NotNil(t, normalizeCmd.Flags().Lookup("explain"))
}

func TestNormalizeCmd_NotConfigured(t *testing.T) {
	SetServices(nil)

	_, err := executeWithInput("<p>x</p>", "normalize")

	assert.ErrorIs(t, err, errNormaliseNotConfigured)
}

func TestNormalizeCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeWithInput("<B>hi</B> <I>there</I>\n", "normalize")

	require.NoError(t, err)
	assert.Equal(t, "<strong>hi</strong> <em>there</em>\n", out)
}

func TestNormalizeCmd_File(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<P>x</P>\n"), 0o600))

	out, err := executeCommand("normalize", path)

	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>\n", out)
}

func TestNormalizeCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand("normalize", filepath.Join(t.TempDir(), "missing.html"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestNormalizeCmd_Check(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		output  string
	}{
		{"canonical", "<p>x</p>", false, "canonical"},
		{"not canonical", "<P>x</P>", true, "not canonical, expected:\n<p>x</p>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cleanup := setupTestServices()
			defer cleanup()

			out, err := executeWithInput(tc.input, "normalize", "--check")

			if tc.wantErr {
				assert.ErrorIs(t, err, errNotCanonical)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tc.output)
		})
	}
}

func TestNormalizeCmd_Explain(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeWithInput("<B>x</B>", "normalize", "--explain")

	require.NoError(t, err)
	assert.Contains(t, out, "  vendor-artifacts")
	assert.Contains(t, out, "* semantic-tags")
	assert.Contains(t, out, "<strong>x</strong>")
}
