package highscore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Keeper adapts a Store to the engine. Failures are logged and swallowed: a
// failed load reads as 0 and a failed save is dropped.
type Keeper struct {
	Store   Store
	Slot    string
	Timeout time.Duration
}

// NewKeeper returns a keeper for slot. An empty slot uses DefaultSlot.
func NewKeeper(store Store, slot string, timeout time.Duration) *Keeper {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Keeper{
		Store:   store,
		Slot:    slot,
		Timeout: timeout,
	}
}

func (k *Keeper) context() (context.Context, context.CancelFunc) {
	if k.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), k.Timeout)
}

// LoadHighScore returns the stored score, or 0 if there is none or the store
// failed.
func (k *Keeper) LoadHighScore() int {
	ctx, cancel := k.context()
	defer cancel()

	score, err := k.Store.Load(ctx, k.Slot)
	switch {
	case errors.Cause(err) == ErrNotFound:
		return 0
	case err != nil:
		log.WithError(err).WithField("slot", k.Slot).Warn("unable to load high score")
		return 0
	case score < 0:
		log.WithField("slot", k.Slot).WithField("score", score).Warn("ignoring negative high score")
		return 0
	}
	return score
}

// SaveHighScore writes score to the store.
func (k *Keeper) SaveHighScore(score int) {
	ctx, cancel := k.context()
	defer cancel()

	if err := k.Store.Save(ctx, k.Slot, score); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"slot":  k.Slot,
			"score": score,
		}).Error("unable to save high score")
	}
}
