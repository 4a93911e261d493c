// Command snake is the same binary as cmd/snake, installable from the module
// root.
package main

import (
	"github.com/battlesnakeio/snake/cmd/snake/commands"
)

func main() {
	commands.Execute()
}
