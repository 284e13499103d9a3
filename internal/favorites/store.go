// Package favorites keeps the user's saved recipes. The collection is
// persisted as a JSON array under a single preference key and rewritten on
// every mutation.
package favorites

import (
	"encoding/json"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ytget/recipe-finder/internal/model"
)

// Key is the preference key holding the serialized collection.
const Key = "recipe_favorites"

// Preferences is the subset of fyne.Preferences the store needs.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
}

// Store is the favorites collection. Insertion order is preserved and each
// recipe ID appears at most once.
type Store struct {
	prefs Preferences
	log   logr.Logger

	mu        sync.RWMutex
	order     []model.RecipeSummary
	index     map[int]int // recipe ID -> position in order
	listeners []func()
}

// NewStore loads the persisted collection. Corrupt data is logged and
// treated as an empty collection.
func NewStore(prefs Preferences, log logr.Logger) *Store {
	s := &Store{
		prefs: prefs,
		log:   log.WithName("favorites"),
		index: make(map[int]int),
	}
	s.load()
	return s
}

func (s *Store) load() {
	raw := s.prefs.String(Key)
	if raw == "" {
		return
	}

	var stored []model.RecipeSummary
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.log.Error(err, "Error parsing favorites, starting empty")
		return
	}

	for _, r := range stored {
		if _, dup := s.index[r.ID]; dup {
			continue
		}
		s.index[r.ID] = len(s.order)
		s.order = append(s.order, r)
	}
	s.log.V(1).Info("favorites loaded", "count", len(s.order))
}

// IsFavorite reports whether the recipe is saved
func (s *Store) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// Get returns the saved record for id
func (s *Store) Get(id int) (model.RecipeSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[id]
	if !ok {
		return model.RecipeSummary{}, false
	}
	return s.order[pos], true
}

// List returns a copy of the collection in insertion order
func (s *Store) List() []model.RecipeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.RecipeSummary{}, s.order...)
}

// Len returns the number of saved recipes
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Toggle saves the recipe if absent and removes it if present. It returns
// whether the recipe is a favorite afterwards.
func (s *Store) Toggle(recipe model.RecipeSummary) bool {
	s.mu.Lock()
	var now bool
	if _, ok := s.index[recipe.ID]; ok {
		s.removeLocked(recipe.ID)
	} else {
		s.index[recipe.ID] = len(s.order)
		s.order = append(s.order, recipe)
		now = true
	}
	s.persistLocked()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners)
	return now
}

// Remove deletes the recipe. It returns false when it was not saved.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	if _, ok := s.index[id]; !ok {
		s.mu.Unlock()
		return false
	}
	s.removeLocked(id)
	s.persistLocked()
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	notify(listeners)
	return true
}

// OnChange registers a callback invoked after every mutation
func (s *Store) OnChange(callback func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, callback)
}

func (s *Store) removeLocked(id int) {
	pos := s.index[id]
	s.order = append(s.order[:pos], s.order[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.order); i++ {
		s.index[s.order[i].ID] = i
	}
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(s.order)
	if err != nil {
		s.log.Error(err, "Failed to encode favorites")
		return
	}
	s.prefs.SetString(Key, string(data))
}

func (s *Store) snapshotListeners() []func() {
	return append([]func(){}, s.listeners...)
}

func notify(listeners []func()) {
	for _, l := range listeners {
		l()
	}
}
