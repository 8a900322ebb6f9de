package auth

import "sync"

// SessionRegistry maps live tokens to the identity that logged in with them.
// It acts as a revocation list: a hit only counts once the token itself has
// validated. A single mutex guards every operation.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]string
}

// NewSessionRegistry returns an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]string)}
}

// Insert binds token to identity, replacing any previous binding.
func (r *SessionRegistry) Insert(token, identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = identity
}

// Lookup returns the identity bound to token.
func (r *SessionRegistry) Lookup(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.sessions[token]
	return identity, ok
}

// Remove deletes token and reports whether it was present.
func (r *SessionRegistry) Remove(token string) bool {
	_, ok := r.Take(token)
	return ok
}

// Take deletes token and returns the identity it was bound to.
func (r *SessionRegistry) Take(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	identity, ok := r.sessions[token]
	if ok {
		delete(r.sessions, token)
	}
	return identity, ok
}

// Len returns the number of registered sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes every entry whose token keep rejects and returns how many
// were removed. keep runs without the lock held.
func (r *SessionRegistry) Sweep(keep func(token string) bool) int {
	r.mu.Lock()
	tokens := make([]string, 0, len(r.sessions))
	for token := range r.sessions {
		tokens = append(tokens, token)
	}
	r.mu.Unlock()

	stale := tokens[:0]
	for _, token := range tokens {
		if !keep(token) {
			stale = append(stale, token)
		}
	}
	if len(stale) == 0 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for _, token := range stale {
		if _, ok := r.sessions[token]; ok {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}
