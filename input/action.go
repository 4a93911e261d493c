// Package input turns keys, buttons and swipes into game actions. It never
// writes game state itself, actions only reach the engine through Apply.
package input

import (
	"github.com/battlesnakeio/snake/rules"
)

// Action is a player intent.
type Action int

const (
	// None is no action.
	None Action = iota
	Up
	Down
	Left
	Right
	Pause
	Restart
	Quit
)

var actionNames = map[Action]string{
	None:    "none",
	Up:      "up",
	Down:    "down",
	Left:    "left",
	Right:   "right",
	Pause:   "pause",
	Restart: "restart",
	Quit:    "quit",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// Direction returns the movement an action asks for.
func (a Action) Direction() (rules.Direction, bool) {
	switch a {
	case Up:
		return rules.Up, true
	case Down:
		return rules.Down, true
	case Left:
		return rules.Left, true
	case Right:
		return rules.Right, true
	}
	return rules.Direction{}, false
}

// Controller is the part of the engine input is allowed to drive.
type Controller interface {
	SetDirection(rules.Direction)
	TogglePause()
	Reset()
}

// Apply routes an action to the engine. It returns false when the player asked
// to quit.
func Apply(c Controller, a Action) bool {
	if d, ok := a.Direction(); ok {
		c.SetDirection(d)
		return true
	}
	switch a {
	case Pause:
		c.TogglePause()
	case Restart:
		c.Reset()
	case Quit:
		return false
	}
	return true
}

// FromButton maps the name of an on-screen button.
func FromButton(name string) Action {
	for a, n := range actionNames {
		if a != None && a != Quit && n == name {
			return a
		}
	}
	return None
}
