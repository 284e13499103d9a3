package config

import (
	"strings"
	"sync"
)

// Preferences is the subset of fyne.Preferences the persisted stores need.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// CredentialStore holds the recipe API key. At most one key is active; an
// absent key means the app runs unauthenticated and performs no searches.
type CredentialStore struct {
	prefs Preferences

	mu        sync.RWMutex
	listeners []func(present bool)
}

// NewCredentialStore creates a credential store backed by prefs
func NewCredentialStore(prefs Preferences) *CredentialStore {
	return &CredentialStore{prefs: prefs}
}

// Credential returns the stored key and whether one is set
func (c *CredentialStore) Credential() (string, bool) {
	key := c.prefs.String(KeyAPIKey)
	return key, key != ""
}

// HasCredential reports whether a key is set
func (c *CredentialStore) HasCredential() bool {
	_, ok := c.Credential()
	return ok
}

// Set stores key after trimming surrounding whitespace. A blank key clears
// the store, matching an explicit Clear.
func (c *CredentialStore) Set(key string) {
	key = strings.TrimSpace(key)
	if key == "" {
		c.Clear()
		return
	}
	c.prefs.SetString(KeyAPIKey, key)
	c.notify(true)
}

// Clear removes the stored key
func (c *CredentialStore) Clear() {
	c.prefs.RemoveValue(KeyAPIKey)
	c.notify(false)
}

// OnChange registers a callback invoked after every Set or Clear
func (c *CredentialStore) OnChange(callback func(present bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, callback)
}

func (c *CredentialStore) notify(present bool) {
	c.mu.RLock()
	listeners := append([]func(bool){}, c.listeners...)
	c.mu.RUnlock()

	for _, l := range listeners {
		l(present)
	}
}
