package calllog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/callshot/internal/model"
)

func TestStartEdit_CancelLeavesCollectionIdentical(t *testing.T) {
	s := NewStore(DefaultEntries()...)
	before := s.Entries()

	require.True(t, s.StartEdit("4"))
	assert.Equal(t, Editing, s.Mode())

	s.UpdateDraft(func(e *model.CallEntry) {
		e.Name = "Другое имя"
		e.Direction = model.DirectionMissed
	})
	assert.Equal(t, before, s.Entries(), "draft edits must not leak before commit")

	s.CancelEdit()
	assert.Equal(t, Idle, s.Mode())
	assert.Equal(t, before, s.Entries())

	_, ok := s.Draft()
	assert.False(t, ok)
}

func TestCommitEdit_ChangesExactlyOneEntry(t *testing.T) {
	s := NewStore(DefaultEntries()...)
	before := s.Entries()

	require.True(t, s.StartEdit("6"))
	require.True(t, s.UpdateDraft(func(e *model.CallEntry) {
		e.Name = "Люба Петровна"
		e.RepeatCount = 1
		e.Time = "12:00"
	}))
	require.True(t, s.CommitEdit())
	assert.False(t, s.IsEditing())

	after := s.Entries()
	require.Len(t, after, len(before))

	changed := 0
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID, "order must be preserved")
		if before[i] != after[i] {
			changed++
			assert.Equal(t, "6", after[i].ID)
			assert.Equal(t, "Люба Петровна", after[i].Name)
			assert.Equal(t, "12:00", after[i].Time)
			assert.Zero(t, after[i].RepeatCount)
		}
	}
	assert.Equal(t, 1, changed)
}

func TestCommitEdit_WithoutEditIsNoop(t *testing.T) {
	s := NewStore(DefaultEntries()...)
	before := s.Entries()

	assert.False(t, s.CommitEdit())
	assert.Equal(t, before, s.Entries())
}

func TestStartEdit_UnknownID(t *testing.T) {
	s := NewStore(DefaultEntries()...)

	assert.False(t, s.StartEdit("nope"))
	assert.Equal(t, Idle, s.Mode())
	assert.False(t, s.UpdateDraft(func(e *model.CallEntry) { e.Name = "x" }))
}

func TestStartEdit_LastCallWins(t *testing.T) {
	s := NewStore(DefaultEntries()...)

	require.True(t, s.StartEdit("1"))
	s.UpdateDraft(func(e *model.CallEntry) { e.Name = "lost" })
	require.True(t, s.StartEdit("8"))

	draft, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, "8", draft.ID)
	assert.Equal(t, "Бухгалтерия", draft.Name)

	require.True(t, s.CommitEdit())
	first, _ := s.Get("1")
	assert.Equal(t, "Владимир Николаевич", first.Name)
}

func TestUpdateDraft_CannotChangeID(t *testing.T) {
	s := NewStore(DefaultEntries()...)
	require.True(t, s.StartEdit("5"))

	s.UpdateDraft(func(e *model.CallEntry) { e.ID = "1" })
	draft, _ := s.Draft()
	assert.Equal(t, "5", draft.ID)
}

func TestCommitEdit_EntryRemovedWhileEditing(t *testing.T) {
	s := NewStore(DefaultEntries()...)
	require.True(t, s.StartEdit("7"))
	require.True(t, s.Remove("7"))
	before := s.Entries()

	assert.False(t, s.CommitEdit())
	assert.Equal(t, before, s.Entries())
	assert.False(t, s.IsEditing())
}

func TestEditMode_String(t *testing.T) {
	assert.Equal(t, "Idle", Idle.String())
	assert.Equal(t, "Editing", Editing.String())
}
