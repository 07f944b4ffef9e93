package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/editable/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewEditor, "editor"},
		{ViewPrompt, "prompt"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewType_StartsAtEditor(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewEditor, v)
}

func TestDocumentSaved(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		doc := &domain.StoredDocument{ID: "d1", Name: "notes"}
		msg := DocumentSaved{Document: doc}

		assert.Equal(t, "notes", msg.Document.Name)
		assert.NoError(t, msg.Err)
	})

	t.Run("failure", func(t *testing.T) {
		msg := DocumentSaved{Err: errors.New("disk full")}

		assert.Nil(t, msg.Document)
		assert.EqualError(t, msg.Err, "disk full")
	})
}

func TestCommandRun(t *testing.T) {
	msg := CommandRun{Command: "bold", Err: domain.ErrReentrantCall}

	assert.Equal(t, "bold", msg.Command)
	assert.ErrorIs(t, msg.Err, domain.ErrReentrantCall)
}

func TestOptionsChanged(t *testing.T) {
	opts := domain.DefaultEditorOptions()
	opts.Toolbar = false
	msg := OptionsChanged{Options: opts}

	assert.False(t, msg.Options.Toolbar)
	assert.Equal(t, domain.FlavorGecko, msg.Options.Flavor)
}
