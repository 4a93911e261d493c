package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	addStoreFlags(highscoreShowCmd)
	addStoreFlags(highscoreResetCmd)
	highscoreCmd.AddCommand(highscoreShowCmd)
	highscoreCmd.AddCommand(highscoreResetCmd)
}

type highscoreEntry struct {
	Backend string
	Slot    string
	Score   int
	Stored  bool
}

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "inspects the stored high score",
}

var highscoreShowCmd = &cobra.Command{
	Use:   "show",
	Short: "shows the high score kept in a slot",
	Run: withStore(func(ctx context.Context, store highscore.Store) error {
		entry := highscoreEntry{Backend: storeBackend, Slot: storeSlot, Stored: true}
		score, err := store.Load(ctx, storeSlot)
		switch {
		case errors.Cause(err) == highscore.ErrNotFound:
			entry.Stored = false
		case err != nil:
			return err
		}
		entry.Score = score
		spew.Dump(entry)
		return nil
	}),
}

var highscoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "sets the high score kept in a slot back to zero",
	Run: withStore(func(ctx context.Context, store highscore.Store) error {
		if err := store.Save(ctx, storeSlot, 0); err != nil {
			return err
		}
		fmt.Printf("high score in %s reset\n", storeSlot)
		return nil
	}),
}

func withStore(f func(context.Context, highscore.Store) error) func(*cobra.Command, []string) {
	return func(*cobra.Command, []string) {
		store, err := openStore()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		err = f(ctx, store)
		cancel()
		closeStore(store)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}
}
