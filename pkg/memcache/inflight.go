// pkg/mem/inflight.go
package mem

import "sync"

// InFlightStore tracks outstanding asynchronous requests per key so the
// same request cannot be started twice.
type InFlightStore interface {
	// Begin marks key as in flight. Returns false if it already is.
	Begin(key string) bool

	// End clears the flag. Must run on every exit path of the request,
	// including failures, or the key stays stuck.
	End(key string)

	Active(key string) bool
}

type InFlight struct {
	mu   sync.Mutex
	keys map[string]bool
}

func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]bool)}
}

func (s *InFlight) Begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keys[key] {
		return false
	}
	s.keys[key] = true
	return true
}

func (s *InFlight) End(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.keys, key)
}

func (s *InFlight) Active(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[key]
}
