package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/unoup/pkg/config"
)

func TestWrapArgvWithoutTerminal(t *testing.T) {
	argv := wrapArgv("", nil, "uno-worker", []string{"--port", "5555"})

	assert.Equal(t, []string{"uno-worker", "--port", "5555"}, argv)
}

func TestWrapArgvDashE(t *testing.T) {
	argv := wrapArgv("kitty", nil, "uno-broker", nil)

	assert.Equal(t, []string{"kitty", "-e", "uno-broker"}, argv)
}

func TestWrapArgvGnomeTerminal(t *testing.T) {
	argv := wrapArgv("gnome-terminal", nil, "uno-worker", []string{"--port", "5555"})

	assert.Equal(t, []string{"gnome-terminal", "--", "uno-worker", "--port", "5555"}, argv)
}

func TestWrapArgvKeepsTerminalArgs(t *testing.T) {
	argv := wrapArgv("alacritty", []string{"--title", "uno"}, "uno-client", nil)

	assert.Equal(t, []string{"alacritty", "--title", "uno", "-e", "uno-client"}, argv)
}

func TestNewFallsBackToDetachedForMissingTerminal(t *testing.T) {
	cfg := &config.Config{
		Terminal: config.TerminalConfig{Command: "definitely-not-installed-terminal"},
	}

	spawner := New(cfg)

	assert.Empty(t, spawner.Terminal())
}

func TestSpawnEmptyProgram(t *testing.T) {
	spawner := &TerminalSpawner{logger: newLogger()}

	_, err := spawner.Spawn("")

	require.Error(t, err)
}

func TestSpawnMissingProgram(t *testing.T) {
	spawner := &TerminalSpawner{logger: newLogger()}

	_, err := spawner.Spawn("definitely-not-an-installed-program")

	require.Error(t, err)
}

func TestSpawnDetachedProcess(t *testing.T) {
	spawner := &TerminalSpawner{logger: newLogger()}

	proc, err := spawner.Spawn("true")

	require.NoError(t, err)
	assert.Greater(t, proc.PID, 0)
	assert.Equal(t, "true", proc.Program)
	assert.NotEmpty(t, proc.Session)
}
