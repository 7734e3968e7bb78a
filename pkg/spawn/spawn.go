// Package spawn starts the external broker, worker, and client programs.
// Each process is started fire-and-forget in its own terminal window when a
// terminal emulator is available, or fully detached otherwise. The launcher
// never waits on a child and never tracks it after Start.
package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lvim-tech/unoup/pkg/config"
	"github.com/lvim-tech/unoup/pkg/utils"
)

// Proc е handle към стартиран процес. Caller-ът може да го игнорира -
// launcher-ът не следи child процесите след Start.
type Proc struct {
	Session string
	Program string
	Args    []string
	PID     int
}

// Spawner стартира външна програма без да чака резултата
type Spawner interface {
	Spawn(program string, args ...string) (*Proc, error)
}

// TerminalSpawner стартира всяка програма в нов терминален прозорец
type TerminalSpawner struct {
	terminal     string
	terminalArgs []string
	logger       zerolog.Logger
}

// New създава spawner от config. Празен terminal command = auto-detect.
func New(cfg *config.Config) *TerminalSpawner {
	terminal := cfg.Terminal.Command
	if terminal == "" {
		terminal = utils.DetectTerminal()
	}
	if terminal != "" && !utils.CommandExists(terminal) {
		terminal = ""
	}

	return &TerminalSpawner{
		terminal:     terminal,
		terminalArgs: cfg.Terminal.Args,
		logger:       newLogger(),
	}
}

// Spawn стартира програма в нов терминал (или detached) и връща handle
func (s *TerminalSpawner) Spawn(program string, args ...string) (*Proc, error) {
	if program == "" {
		return nil, fmt.Errorf("no program configured")
	}

	argv := wrapArgv(s.terminal, s.terminalArgs, program, args)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Env = os.Environ()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	// Own process group, детето не умира с launcher-а
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    0,
	}

	proc := &Proc{
		Session: uuid.NewString(),
		Program: program,
		Args:    args,
	}

	if err := cmd.Start(); err != nil {
		s.logger.Warn().
			Str("session", proc.Session).
			Str("program", program).
			Strs("args", args).
			Err(err).
			Msg("spawn failed")
		return nil, fmt.Errorf("failed to start %s: %w", program, err)
	}

	proc.PID = cmd.Process.Pid

	// Release the handle - никакъв lifecycle management след старта
	if err := cmd.Process.Release(); err != nil {
		s.logger.Debug().Err(err).Msg("process release")
	}

	s.logger.Info().
		Str("session", proc.Session).
		Str("program", program).
		Strs("args", args).
		Int("pid", proc.PID).
		Str("terminal", s.terminal).
		Msg("spawned")

	return proc, nil
}

// Terminal връща избрания терминален емулатор ("" = detached mode)
func (s *TerminalSpawner) Terminal() string {
	return s.terminal
}

// wrapArgv обвива програмата в терминален емулатор, ако има такъв
func wrapArgv(terminal string, terminalArgs []string, program string, args []string) []string {
	if terminal == "" {
		return append([]string{program}, args...)
	}

	argv := append([]string{terminal}, terminalArgs...)
	switch terminal {
	case "gnome-terminal":
		argv = append(argv, "--")
	default:
		// kitty, alacritty, foot, wezterm, konsole, xterm приемат -e
		argv = append(argv, "-e")
	}
	argv = append(argv, program)
	return append(argv, args...)
}

// newLogger създава spawn audit logger. Тих по подразбиране,
// UNOUP_LOG_LEVEL=debug|info|warn го управлява.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := os.Getenv("UNOUP_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
