// Package e2e drives whole games through the frame loop and the session
// endpoint through a real http server.
package e2e

import (
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/rules"
)

type client struct {
	apiURL string
	client *http.Client
}

func (c *client) get(path string) (int, []byte, error) {
	resp, err := c.client.Get(fmt.Sprintf("%s%s", c.apiURL, path))
	if err != nil {
		return 0, nil, err
	}
	data, err := ioutil.ReadAll(resp.Body)
	if cErr := resp.Body.Close(); err == nil {
		err = cErr
	}
	return resp.StatusCode, data, err
}

func (c *client) session(model string) (int, []byte, error) {
	if model == "" {
		return c.get("/session")
	}
	return c.get("/session?model=" + model)
}

// bot chases food until the snake is long enough to run into itself, then
// turns back on its own body.
type bot struct {
	minLength int
	uturn     []rules.Direction
}

// next picks the action for the coming tick.
func (b *bot) next(s rules.State, size int) input.Action {
	if s.GameOver {
		return input.None
	}
	if len(b.uturn) == 0 && len(s.Snake) >= b.minLength {
		// sideways, backwards, then sideways the other way lands on the
		// segment right behind where the turn started
		side := rules.Direction{X: s.Direction.Y, Y: s.Direction.X}
		b.uturn = []rules.Direction{side, s.Direction.Reverse(), side.Reverse()}
	}
	if len(b.uturn) > 0 {
		d := b.uturn[0]
		b.uturn = b.uturn[1:]
		return action(d)
	}
	if s.Food == nil {
		return input.None
	}
	return action(b.chase(s, size))
}

func (b *bot) chase(s rules.State, size int) rules.Direction {
	head, food := s.Head(), *s.Food
	want := s.Direction
	switch {
	case head.X != food.X:
		want = rules.Right
		if (food.X-head.X+size)%size > size/2 {
			want = rules.Left
		}
	case head.Y != food.Y:
		want = rules.Down
		if (food.Y-head.Y+size)%size > size/2 {
			want = rules.Up
		}
	}
	if want.Reverses(s.Direction) {
		return rules.Direction{X: s.Direction.Y, Y: s.Direction.X}
	}
	return want
}

func action(d rules.Direction) input.Action {
	switch d {
	case rules.Up:
		return input.Up
	case rules.Down:
		return input.Down
	case rules.Left:
		return input.Left
	case rules.Right:
		return input.Right
	}
	return input.None
}
