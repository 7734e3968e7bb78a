// Package broker starts the external broker program.
// The broker takes no arguments; it binds the fixed coordination port
// itself, so the port is only shown to the operator, never passed.
package broker

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/unoup/pkg/commands"
)

func init() {
	commands.Register(commands.Command{
		Name:        "broker",
		Description: "Start broker",
		Run:         Run,
	})
}

// Run стартира broker-а от интерактивното меню
func Run(ctx commands.Context) commands.CommandResult {
	cfg := loadConfig(ctx)
	if !cfg.Enabled {
		return commands.CommandResult{
			Success: false,
			Error:   fmt.Errorf("broker module is disabled in config"),
		}
	}

	return Launch(ctx)
}

// Launch spawn-ва broker процеса без аргументи
func Launch(ctx commands.Context) commands.CommandResult {
	program := ctx.Config().GetProgram("broker")

	proc, err := ctx.Spawner().Spawn(program)
	if err != nil {
		return commands.CommandResult{Success: false, Error: err}
	}

	fmt.Fprintf(ctx.Out(), "Broker started (PID %d). Workers and clients connect on port %d.\n",
		proc.PID, ctx.Config().BrokerPort)

	return commands.CommandResult{Success: true}
}

func loadConfig(ctx commands.Context) Config {
	raw := ctx.Config().GetCommandConfig("broker")

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
