// Package menu implements the interactive launcher loop: it renders the
// option list, reads one line of operator input, and dispatches to the
// selected command until the operator exits.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lvim-tech/unoup/pkg/config"
	"github.com/lvim-tech/unoup/pkg/spawn"
)

// Context е конкретният commands.Context за интерактивен режим
type Context struct {
	in      *bufio.Reader
	out     io.Writer
	spawner spawn.Spawner
	cfg     *config.Config
	args    []string
	direct  bool
}

// NewContext създава context за интерактивното меню
func NewContext(in io.Reader, out io.Writer, spawner spawn.Spawner, cfg *config.Config) *Context {
	return &Context{
		in:      bufio.NewReader(in),
		out:     out,
		spawner: spawner,
		cfg:     cfg,
	}
}

// NewDirectContext създава context за direct launch от subcommand
func NewDirectContext(spawner spawn.Spawner, cfg *config.Config, args []string) *Context {
	ctx := NewContext(os.Stdin, os.Stdout, spawner, cfg)
	ctx.args = args
	ctx.direct = true
	return ctx
}

// Ask prompts for one line of input. Blank input returns def;
// anything else is returned verbatim, only surrounding whitespace trimmed.
func (c *Context) Ask(prompt, def string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Out връща изходния writer
func (c *Context) Out() io.Writer {
	return c.out
}

// Spawner връща process spawner-а
func (c *Context) Spawner() spawn.Spawner {
	return c.spawner
}

// Config връща заредения config
func (c *Context) Config() *config.Config {
	return c.cfg
}

// Args връща direct launch аргументите
func (c *Context) Args() []string {
	return c.args
}

// IsDirectLaunch проверява дали командата е стартирана от subcommand
func (c *Context) IsDirectLaunch() bool {
	return c.direct
}
