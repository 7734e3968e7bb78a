// Package commands provides the core command system for the unoup launcher.
// It defines the Command type, CommandResult for menu flow control, and the
// Context interface commands run against.
package commands

import (
	"errors"
	"io"

	"github.com/lvim-tech/unoup/pkg/config"
	"github.com/lvim-tech/unoup/pkg/spawn"
)

// ErrBack се връща когато потребителят се откаже от команда
var ErrBack = errors.New("back to menu")

// CommandResult represents the result of command execution
type CommandResult struct {
	Success bool
	Error   error
}

// Command представлява една menu команда
type Command struct {
	Name        string
	Description string
	Run         func(Context) CommandResult
}

// Context interface за изпълнение на команда
type Context interface {
	// Ask prompts the operator for one line of input. Blank input
	// returns def; non-blank input is returned verbatim.
	Ask(prompt, def string) (string, error)

	// Out is the writer commands report on, the same stream the menu
	// renders to.
	Out() io.Writer

	Spawner() spawn.Spawner
	Config() *config.Config

	// Args holds extra arguments for direct (non-interactive) launch
	Args() []string
	IsDirectLaunch() bool
}
