// Package highscore persists the best score across sessions. A store keeps
// a single integer per slot, the game only ever uses one slot.
package highscore

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// DefaultSlot is the slot the game reads and writes.
const DefaultSlot = "snake.high"

var (
	// ErrNotFound is returned when nothing was ever saved to a slot.
	ErrNotFound = errors.New("highscore: slot not found")
	// ErrInvalidScore is returned when saving a negative score.
	ErrInvalidScore = errors.New("highscore: score must not be negative")
)

// Store is the interface to the backend store.
type Store interface {
	Load(ctx context.Context, slot string) (int, error)
	Save(ctx context.Context, slot string, score int) error
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		scores: map[string]int{},
	}
}

type inmem struct {
	scores map[string]int
	lock   sync.Mutex
}

func (in *inmem) Load(ctx context.Context, slot string) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if s, ok := in.scores[slot]; ok {
		return s, nil
	}
	return 0, ErrNotFound
}

func (in *inmem) Save(ctx context.Context, slot string, score int) error {
	if score < 0 {
		return ErrInvalidScore
	}
	in.lock.Lock()
	defer in.lock.Unlock()

	in.scores[slot] = score
	return nil
}
