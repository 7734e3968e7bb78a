// Package commandtest provides fakes for exercising commands
// without spawning real processes.
package commandtest

import (
	"bytes"
	"io"

	"github.com/lvim-tech/unoup/pkg/config"
	"github.com/lvim-tech/unoup/pkg/spawn"
)

// SpawnCall записва един Spawn
type SpawnCall struct {
	Program string
	Args    []string
}

// Spawner записва spawn call-овете вместо да стартира процеси
type Spawner struct {
	Calls []SpawnCall
	Err   error
}

// Spawn имплементира spawn.Spawner
func (s *Spawner) Spawn(program string, args ...string) (*spawn.Proc, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Calls = append(s.Calls, SpawnCall{Program: program, Args: args})
	return &spawn.Proc{
		Session: "test-session",
		Program: program,
		Args:    args,
		PID:     1000 + len(s.Calls),
	}, nil
}

// Context е фалшив commands.Context със скриптирани отговори.
// Празен отговор в Answers симулира празен input (връща default-а).
type Context struct {
	Answers    []string
	Prompts    []string
	OutBuf     bytes.Buffer
	Cfg        *config.Config
	Sp         *Spawner
	Direct     bool
	DirectArgs []string
}

// NewContext създава context с празен recording spawner
func NewContext(cfg *config.Config) *Context {
	return &Context{Cfg: cfg, Sp: &Spawner{}}
}

// Ask връща следващия скриптиран отговор (или def при празен)
func (c *Context) Ask(prompt, def string) (string, error) {
	c.Prompts = append(c.Prompts, prompt)
	if len(c.Answers) == 0 {
		return def, nil
	}
	answer := c.Answers[0]
	c.Answers = c.Answers[1:]
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Out връща тестовия изходен буфер
func (c *Context) Out() io.Writer {
	return &c.OutBuf
}

// Spawner връща recording spawner-а
func (c *Context) Spawner() spawn.Spawner {
	return c.Sp
}

// Config връща тестовия config
func (c *Context) Config() *config.Config {
	return c.Cfg
}

// Args връща direct launch аргументите
func (c *Context) Args() []string {
	return c.DirectArgs
}

// IsDirectLaunch проверява direct режим
func (c *Context) IsDirectLaunch() bool {
	return c.Direct
}

// TestConfig връща config еквивалентен на вградените defaults
func TestConfig() *config.Config {
	return &config.Config{
		BrokerPort: 6000,
		Menu: config.MenuConfig{
			Title:       "UNO Local Topology Launcher",
			ModuleOrder: []string{"broker", "worker", "client", "localtest"},
		},
		Programs: config.ProgramsConfig{
			Broker: "uno-broker",
			Worker: "uno-worker",
			Client: "uno-client",
		},
		Defaults: config.DefaultsConfig{
			BrokerHost: "127.0.0.1",
			WorkerPort: "5555",
		},
	}
}
