// Package localtest brings up a complete local topology for manual
// end-to-end smoke testing: one broker, two workers, and two clients,
// all on this host. Spawns are staggered by a fixed delay so the broker
// is up before the workers register; nothing waits for readiness.
package localtest

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/lvim-tech/unoup/pkg/commands"
	"github.com/lvim-tech/unoup/pkg/commands/broker"
	"github.com/lvim-tech/unoup/pkg/commands/client"
	"github.com/lvim-tech/unoup/pkg/commands/worker"
)

// за тестове
var sleepFn = time.Sleep

func init() {
	commands.Register(commands.Command{
		Name:        "localtest",
		Description: "Start full local test (broker + 2 workers + 2 clients)",
		Run:         Run,
	})
}

// Run стартира цялата локална топология
func Run(ctx commands.Context) commands.CommandResult {
	cfg := loadConfig(ctx)
	if !cfg.Enabled {
		return commands.CommandResult{
			Success: false,
			Error:   fmt.Errorf("localtest module is disabled in config"),
		}
	}

	return Launch(ctx, cfg)
}

// Launch spawn-ва broker, workers и clients в строг ред с фиксирано
// закъснение между всеки два spawn-а
func Launch(ctx commands.Context, cfg Config) commands.CommandResult {
	delay := time.Duration(cfg.SpawnDelayMs) * time.Millisecond
	host := ctx.Config().Defaults.BrokerHost

	fmt.Fprintln(ctx.Out(), "Starting full local test...")

	if result := broker.Launch(ctx); result.Error != nil {
		return result
	}

	for _, port := range cfg.WorkerPorts {
		sleepFn(delay)
		if result := worker.Launch(ctx, host, port); result.Error != nil {
			return result
		}
	}

	for i := 0; i < cfg.Clients; i++ {
		sleepFn(delay)
		if result := client.Launch(ctx); result.Error != nil {
			return result
		}
	}

	fmt.Fprintln(ctx.Out(), "Full local test is up.")

	return commands.CommandResult{Success: true}
}

func loadConfig(ctx commands.Context) Config {
	raw := ctx.Config().GetCommandConfig("localtest")

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
