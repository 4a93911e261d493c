package commands

import (
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"math/rand"
	"os"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/loop"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// swipeCells is the drag distance, in terminal cells, read as a swipe.
const swipeCells = 2

var (
	seed          int64
	logFile       = ""
	frameInterval = loop.DefaultFrameInterval
)

func init() {
	playCmd.Flags().Int64Var(&seed, "seed", seed, "seed for food placement, 0 picks one from the clock")
	playCmd.Flags().StringVar(&logFile, "log-file", logFile, "file to append logs to, logs are discarded when empty")
	playCmd.Flags().DurationVar(&frameInterval, "frame", frameInterval, "time between redraws")
	addStoreFlags(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	Run: func(*cobra.Command, []string) {
		if err := play(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func play() error {
	out, err := logOutput(logFile)
	if err != nil {
		return err
	}
	log.SetOutput(out)
	defer func() {
		log.SetOutput(os.Stderr)
		out.Close()
	}()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(store)

	opts := []rules.Option{
		rules.WithScoreKeeper(highscore.NewKeeper(store, storeSlot, storeTimeout)),
	}
	if seed != 0 {
		opts = append(opts, rules.WithRand(rand.New(rand.NewSource(seed))))
	}
	engine := rules.New(opts...)

	if err = termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to open terminal")
	}
	defer termbox.Close()
	defer termbox.Interrupt()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	board := render.NewBoard(render.Termbox(), engine.GridSize())
	l := &loop.Loop{
		Engine:        engine,
		Draw:          board.Draw,
		Actions:       setupActionQueue(ctx, input.NewTranslator(swipeCells)),
		FrameInterval: frameInterval,
	}
	return l.Run(ctx)
}

// setupActionQueue reads terminal events on their own goroutine and forwards
// the actions they translate to. The engine is only touched by the loop.
func setupActionQueue(ctx context.Context, tr *input.Translator) <-chan input.Action {
	actions := make(chan input.Action, 16)
	go func() {
		for {
			ev := termbox.PollEvent()
			switch ev.Type {
			case termbox.EventInterrupt:
				return
			case termbox.EventError:
				log.WithError(ev.Err).Error("terminal event error")
				close(actions)
				return
			}

			a := tr.Translate(ev)
			if a == input.None {
				continue
			}
			select {
			case actions <- a:
			case <-ctx.Done():
				return
			}
		}
	}()
	return actions
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// logOutput keeps logs off the terminal the game is drawn on.
func logOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{ioutil.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	return f, nil
}
