// Package memory provides an in-process securestore.Store. Nothing survives
// the process; it backs tests and runs where no database file is configured.
package memory

import (
	"context"
	"sync"

	"tunisiaguide/pkg/securestore"
)

// Op names a store operation for fault injection.
type Op string

const (
	OpGet    Op = "get"
	OpSet    Op = "set"
	OpDelete Op = "delete"
)

// Store is a mutex-guarded map. The zero value is not usable; call New.
type Store struct {
	mu       sync.RWMutex
	items    map[string]string
	failures map[Op]error
}

var _ securestore.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		items:    map[string]string{},
		failures: map[Op]error{},
	}
}

// Fail makes every subsequent call of op return err. A nil err clears the fault.
func (s *Store) Fail(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		delete(s.failures, op)

		return
	}
	s.failures[op] = err
}

func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failures[OpGet]; err != nil {
		return "", false, err
	}
	v, ok := s.items[key]

	return v, ok, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failures[OpSet]; err != nil {
		return err
	}
	s.items[key] = value

	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failures[OpDelete]; err != nil {
		return err
	}
	delete(s.items, key)

	return nil
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
