package calllog

import (
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ytget/callshot/internal/model"
	"github.com/ytget/callshot/internal/phone"
)

// NowMarker is the time label given to entries added without a time
const NowMarker = "Сейчас"

// Store is an ordered call log, most recent entry first
type Store struct {
	mu      sync.RWMutex
	entries []model.CallEntry

	// editing is nil while idle and holds the draft while an entry is edited
	editing *model.CallEntry

	// issued holds every ID ever seen by the store so deleted IDs are never reused
	issued map[string]struct{}
	lastID int64
	now    func() time.Time

	onUpdate func([]model.CallEntry) // callback for UI updates
}

// NewStore creates a store seeded with entries in the given order
func NewStore(seed ...model.CallEntry) *Store {
	s := &Store{
		entries: make([]model.CallEntry, 0, len(seed)),
		issued:  make(map[string]struct{}, len(seed)),
		now:     time.Now,
	}
	for _, e := range seed {
		if _, dup := s.issued[e.ID]; dup || e.ID == "" {
			log.Printf("calllog: skipping seed entry with empty or duplicate id %q", e.ID)
			continue
		}
		e.RepeatCount = model.NormalizeRepeatCount(e.RepeatCount)
		s.issued[e.ID] = struct{}{}
		s.entries = append(s.entries, e)
	}
	return s
}

// SetUpdateCallback sets the callback invoked with a copy of the entries after every change
func (s *Store) SetUpdateCallback(callback func([]model.CallEntry)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Add prepends a new entry. It is a no-op returning false when name is blank.
// An empty time becomes NowMarker, a repeat count of one or less is dropped
// and an empty channel is inferred from the name.
func (s *Store) Add(name string, direction model.Direction, at string, repeatCount int, channel model.Channel) (model.CallEntry, bool) {
	if strings.TrimSpace(name) == "" {
		return model.CallEntry{}, false
	}
	if at == "" {
		at = NowMarker
	}
	if channel == "" {
		channel = phone.DefaultChannel(name)
	}
	if direction == "" {
		direction = model.DirectionIncoming
	}

	s.mu.Lock()
	entry := model.CallEntry{
		ID:          s.nextID(),
		Name:        name,
		Direction:   direction,
		Time:        at,
		RepeatCount: model.NormalizeRepeatCount(repeatCount),
		Channel:     channel,
	}
	s.entries = append([]model.CallEntry{entry}, s.entries...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("calllog: added entry id=%s direction=%s channel=%s", entry.ID, entry.Direction, entry.Channel)
	s.notifyUpdate(snapshot)
	return entry, true
}

// Remove deletes the entry with id. Removing an unknown id is a no-op.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.entries = append(s.entries[:idx:idx], s.entries[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("calllog: removed entry id=%s", id)
	s.notifyUpdate(snapshot)
	return true
}

// Get returns a copy of the entry with id
func (s *Store) Get(id string) (model.CallEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.entries[idx], true
	}
	return model.CallEntry{}, false
}

// Entries returns a copy of all entries in display order
func (s *Store) Entries() []model.CallEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Len returns the number of entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// nextID returns a fresh millisecond-based ID greater than any issued before
func (s *Store) nextID() string {
	candidate := s.now().UnixMilli()
	if candidate <= s.lastID {
		candidate = s.lastID + 1
	}
	for {
		id := strconv.FormatInt(candidate, 10)
		if _, used := s.issued[id]; !used {
			s.lastID = candidate
			s.issued[id] = struct{}{}
			return id
		}
		candidate++
	}
}

func (s *Store) indexLocked(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []model.CallEntry {
	out := make([]model.CallEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// notifyUpdate calls the update callback if set
func (s *Store) notifyUpdate(entries []model.CallEntry) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(entries)
	}
}
