package calllog

import (
	"log"

	"github.com/ytget/callshot/internal/model"
)

// EditMode is the state of the edit buffer
type EditMode int

const (
	Idle EditMode = iota
	Editing
)

// String returns a readable name for the mode
func (m EditMode) String() string {
	if m == Editing {
		return "Editing"
	}
	return "Idle"
}

// Mode returns the current edit mode
func (s *Store) Mode() EditMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editing != nil {
		return Editing
	}
	return Idle
}

// IsEditing reports whether an entry is loaded into the edit buffer
func (s *Store) IsEditing() bool {
	return s.Mode() == Editing
}

// StartEdit copies the entry with id into the edit buffer. A previous draft is
// discarded. It returns false and leaves the current state alone when id is unknown.
func (s *Store) StartEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}
	draft := s.entries[idx]
	if s.editing != nil && s.editing.ID != id {
		log.Printf("calllog: discarding draft for id=%s, editing id=%s", s.editing.ID, id)
	}
	s.editing = &draft
	return true
}

// Draft returns a copy of the edit buffer
func (s *Store) Draft() (model.CallEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editing == nil {
		return model.CallEntry{}, false
	}
	return *s.editing, true
}

// UpdateDraft applies fn to the edit buffer. The draft ID cannot be changed.
func (s *Store) UpdateDraft(fn func(*model.CallEntry)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return false
	}
	id := s.editing.ID
	fn(s.editing)
	s.editing.ID = id
	return true
}

// CommitEdit replaces the entry matching the draft ID with the draft and
// closes edit mode. It is a no-op when nothing is being edited. If the entry
// was removed while editing, the draft is dropped.
func (s *Store) CommitEdit() bool {
	s.mu.Lock()
	if s.editing == nil {
		s.mu.Unlock()
		return false
	}
	draft := *s.editing
	s.editing = nil

	draft.RepeatCount = model.NormalizeRepeatCount(draft.RepeatCount)
	idx := s.indexLocked(draft.ID)
	if idx < 0 {
		s.mu.Unlock()
		log.Printf("calllog: entry id=%s vanished while editing, draft dropped", draft.ID)
		return false
	}
	s.entries[idx] = draft
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("calllog: committed edit for id=%s", draft.ID)
	s.notifyUpdate(snapshot)
	return true
}

// CancelEdit discards the edit buffer
func (s *Store) CancelEdit() {
	s.mu.Lock()
	s.editing = nil
	s.mu.Unlock()
}
