// Package worker starts an external worker node.
// The operator is asked for the broker address and the worker's own port;
// blank answers fall back to the configured defaults. Whatever is typed is
// forwarded verbatim - the worker validates its own arguments.
package worker

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/unoup/pkg/commands"
)

func init() {
	commands.Register(commands.Command{
		Name:        "worker",
		Description: "Start worker",
		Run:         Run,
	})
}

// Run пита за broker host и worker port, после spawn-ва worker
func Run(ctx commands.Context) commands.CommandResult {
	cfg := loadConfig(ctx)
	if !cfg.Enabled {
		return commands.CommandResult{
			Success: false,
			Error:   fmt.Errorf("worker module is disabled in config"),
		}
	}

	defaults := ctx.Config().Defaults

	// Direct launch: аргументите идват от subcommand-а, без prompts
	if ctx.IsDirectLaunch() {
		args := ctx.Args()
		host, port := defaults.BrokerHost, defaults.WorkerPort
		if len(args) > 0 && args[0] != "" {
			host = args[0]
		}
		if len(args) > 1 && args[1] != "" {
			port = args[1]
		}
		return Launch(ctx, host, port)
	}

	host, err := ctx.Ask(
		fmt.Sprintf("Enter broker IP (press Enter for %s)", defaults.BrokerHost),
		defaults.BrokerHost)
	if err != nil {
		return commands.CommandResult{Success: false, Error: commands.ErrBack}
	}

	port, err := ctx.Ask(
		fmt.Sprintf("Enter worker port (press Enter for %s)", defaults.WorkerPort),
		defaults.WorkerPort)
	if err != nil {
		return commands.CommandResult{Success: false, Error: commands.ErrBack}
	}

	return Launch(ctx, host, port)
}

// Launch spawn-ва worker с broker host, фиксирания broker port и worker port
func Launch(ctx commands.Context, host, port string) commands.CommandResult {
	program := ctx.Config().GetProgram("worker")

	proc, err := ctx.Spawner().Spawn(program, Args(ctx.Config().BrokerPort, host, port)...)
	if err != nil {
		return commands.CommandResult{Success: false, Error: err}
	}

	fmt.Fprintf(ctx.Out(), "Worker started (PID %d) on port %s, broker %s:%d.\n",
		proc.PID, port, host, ctx.Config().BrokerPort)

	return commands.CommandResult{Success: true}
}

// Args строи argv за worker процеса
func Args(brokerPort int, host, port string) []string {
	return []string{
		"--broker-host", host,
		"--broker-port", fmt.Sprintf("%d", brokerPort),
		"--port", port,
	}
}

func loadConfig(ctx commands.Context) Config {
	raw := ctx.Config().GetCommandConfig("worker")

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
