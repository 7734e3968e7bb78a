// Package client starts an external client.
package client

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/unoup/pkg/commands"
)

func init() {
	commands.Register(commands.Command{
		Name:        "client",
		Description: "Start client",
		Run:         Run,
	})
}

// Run пита за broker IP и spawn-ва client
func Run(ctx commands.Context) commands.CommandResult {
	cfg := loadConfig(ctx)
	if !cfg.Enabled {
		return commands.CommandResult{
			Success: false,
			Error:   fmt.Errorf("client module is disabled in config"),
		}
	}

	if !ctx.IsDirectLaunch() {
		defaults := ctx.Config().Defaults

		// The answer is not forwarded: the client program prompts for the
		// broker address itself on startup.
		_, err := ctx.Ask(
			fmt.Sprintf("Enter broker IP (press Enter for %s)", defaults.BrokerHost),
			defaults.BrokerHost)
		if err != nil {
			return commands.CommandResult{Success: false, Error: commands.ErrBack}
		}
	}

	return Launch(ctx)
}

// Launch spawn-ва client процеса без аргументи
func Launch(ctx commands.Context) commands.CommandResult {
	program := ctx.Config().GetProgram("client")

	proc, err := ctx.Spawner().Spawn(program)
	if err != nil {
		return commands.CommandResult{Success: false, Error: err}
	}

	fmt.Fprintf(ctx.Out(), "Client started (PID %d).\n", proc.PID)

	return commands.CommandResult{Success: true}
}

func loadConfig(ctx commands.Context) Config {
	raw := ctx.Config().GetCommandConfig("client")

	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return DefaultConfig()
	}
	if err := decoder.Decode(raw); err != nil {
		return DefaultConfig()
	}
	return cfg
}
