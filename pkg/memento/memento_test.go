package memento_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/patternkit/pkg/memento"
)

func TestCapture(t *testing.T) {
	t.Parallel()

	t.Run("stamps id and time", func(t *testing.T) {
		t.Parallel()

		m1 := memento.Capture("state")
		m2 := memento.Capture("state")
		assert.NotEqual(t, m1.ID(), m2.ID())
		assert.False(t, m1.TakenAt().IsZero())
		assert.Equal(t, "state", m1.State())
	})
}

func TestDocumentSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("restore rewinds body and tags", func(t *testing.T) {
		t.Parallel()

		doc := memento.NewDocument()
		doc.Write("draft one")
		doc.Tag("status", "draft")
		snap := doc.Save()

		doc.Write("draft two")
		doc.Tag("status", "review")
		doc.Tag("reviewer", "alice")

		doc.Restore(snap)
		assert.Equal(t, "draft one", doc.Body())
		assert.Equal(t, map[string]string{"status": "draft"}, doc.Tags())
	})

	t.Run("snapshot is immune to later edits", func(t *testing.T) {
		t.Parallel()

		doc := memento.NewDocument()
		doc.Tag("status", "draft")
		snap := doc.Save()

		doc.Tag("status", "published")
		doc.Restore(snap)
		assert.Equal(t, "draft", doc.Tags()["status"])
	})
}

func TestHistory(t *testing.T) {
	t.Parallel()

	t.Run("undo and redo", func(t *testing.T) {
		t.Parallel()

		doc := memento.NewDocument()
		h := memento.NewHistory[memento.DocState](doc)

		doc.Write("v1")
		h.Checkpoint()
		doc.Write("v2")
		h.Checkpoint()
		doc.Write("v3")

		require.NoError(t, h.Undo())
		assert.Equal(t, "v2", doc.Body())
		require.NoError(t, h.Undo())
		assert.Equal(t, "v1", doc.Body())

		require.NoError(t, h.Redo())
		assert.Equal(t, "v2", doc.Body())
		require.NoError(t, h.Redo())
		assert.Equal(t, "v3", doc.Body())
	})

	t.Run("empty stacks report sentinel errors", func(t *testing.T) {
		t.Parallel()

		h := memento.NewHistory[memento.DocState](memento.NewDocument())
		assert.ErrorIs(t, h.Undo(), memento.ErrNothingToUndo)
		assert.ErrorIs(t, h.Redo(), memento.ErrNothingToRedo)
	})

	t.Run("checkpoint discards redo branch", func(t *testing.T) {
		t.Parallel()

		doc := memento.NewDocument()
		h := memento.NewHistory[memento.DocState](doc)

		doc.Write("v1")
		h.Checkpoint()
		doc.Write("v2")
		require.NoError(t, h.Undo())
		require.Equal(t, 1, h.RedoLen())

		doc.Write("v1b")
		h.Checkpoint()
		assert.Equal(t, 0, h.RedoLen())
		assert.ErrorIs(t, h.Redo(), memento.ErrNothingToRedo)
	})

	t.Run("limit drops oldest checkpoint", func(t *testing.T) {
		t.Parallel()

		doc := memento.NewDocument()
		h := memento.NewHistory[memento.DocState](doc, memento.WithLimit(2))

		doc.Write("v1")
		h.Checkpoint()
		doc.Write("v2")
		h.Checkpoint()
		doc.Write("v3")
		h.Checkpoint()
		require.Equal(t, 2, h.Len())

		doc.Write("v4")
		require.NoError(t, h.Undo())
		assert.Equal(t, "v3", doc.Body())
		require.NoError(t, h.Undo())
		assert.Equal(t, "v2", doc.Body())
		// v1 was dropped when the cap was exceeded.
		assert.ErrorIs(t, h.Undo(), memento.ErrNothingToUndo)
	})

	t.Run("panics on invalid construction", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { memento.NewHistory[string](nil) })
		assert.Panics(t, func() { memento.WithLimit(0) })
	})
}
