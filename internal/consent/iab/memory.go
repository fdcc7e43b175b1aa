package iab

import (
	"context"
	"maps"
	"sync"

	"cmpref/internal/consent/models"
)

// MemorySource keeps IAB strings in process memory.
type MemorySource struct {
	mu       sync.RWMutex
	values   map[models.Key]string
	watchers map[int]func(models.Key)
	nextID   int
}

// NewMemorySource constructs an empty in-memory source.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		values:   make(map[models.Key]string),
		watchers: make(map[int]func(models.Key)),
	}
}

func (s *MemorySource) Strings(_ context.Context) (map[models.Key]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values), nil
}

// Set stores an IAB string and notifies watchers when the value changed.
// An empty value removes the key.
func (s *MemorySource) Set(_ context.Context, key models.Key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	prev := s.values[key]
	if value == "" {
		delete(s.values, key)
	} else {
		s.values[key] = value
	}
	changed := prev != value
	watchers := make([]func(models.Key), 0, len(s.watchers))
	for _, fn := range s.watchers {
		watchers = append(watchers, fn)
	}
	s.mu.Unlock()

	if !changed {
		return nil
	}
	for _, fn := range watchers {
		fn(key)
	}
	return nil
}

func (s *MemorySource) Watch(ctx context.Context, fn func(models.Key)) error {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()

	<-ctx.Done()

	s.mu.Lock()
	delete(s.watchers, id)
	s.mu.Unlock()
	return nil
}

var _ Source = (*MemorySource)(nil)
