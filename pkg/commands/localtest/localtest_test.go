package localtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/unoup/pkg/commands/commandtest"
)

func stubSleep(t *testing.T) *[]time.Duration {
	t.Helper()

	var delays []time.Duration
	old := sleepFn
	sleepFn = func(d time.Duration) {
		delays = append(delays, d)
	}
	t.Cleanup(func() { sleepFn = old })

	return &delays
}

func TestFiveSpawnsInFixedOrder(t *testing.T) {
	delays := stubSleep(t)
	ctx := commandtest.NewContext(commandtest.TestConfig())

	result := Run(ctx)

	require.NoError(t, result.Error)
	assert.True(t, result.Success)

	require.Len(t, ctx.Sp.Calls, 5)
	assert.Equal(t, "uno-broker", ctx.Sp.Calls[0].Program)
	assert.Empty(t, ctx.Sp.Calls[0].Args)

	assert.Equal(t, "uno-worker", ctx.Sp.Calls[1].Program)
	assert.Equal(t,
		[]string{"--broker-host", "127.0.0.1", "--broker-port", "6000", "--port", "5555"},
		ctx.Sp.Calls[1].Args)

	assert.Equal(t, "uno-worker", ctx.Sp.Calls[2].Program)
	assert.Equal(t,
		[]string{"--broker-host", "127.0.0.1", "--broker-port", "6000", "--port", "5556"},
		ctx.Sp.Calls[2].Args)

	assert.Equal(t, "uno-client", ctx.Sp.Calls[3].Program)
	assert.Empty(t, ctx.Sp.Calls[3].Args)
	assert.Equal(t, "uno-client", ctx.Sp.Calls[4].Program)
	assert.Empty(t, ctx.Sp.Calls[4].Args)

	assert.Contains(t, ctx.OutBuf.String(), "Full local test is up.")

	// закъснение преди всеки spawn след първия
	require.Len(t, *delays, 4)
	for _, d := range *delays {
		assert.Equal(t, time.Second, d)
	}
}

func TestNoPrompts(t *testing.T) {
	stubSleep(t)
	ctx := commandtest.NewContext(commandtest.TestConfig())

	Run(ctx)

	assert.Empty(t, ctx.Prompts)
}

func TestConfiguredDelayAndPorts(t *testing.T) {
	delays := stubSleep(t)
	cfg := commandtest.TestConfig()
	cfg.Commands = map[string]map[string]any{
		"localtest": {
			"spawn_delay_ms": 250,
			"worker_ports":   []string{"6001"},
			"clients":        1,
		},
	}
	ctx := commandtest.NewContext(cfg)

	result := Run(ctx)

	require.NoError(t, result.Error)
	require.Len(t, ctx.Sp.Calls, 3)
	assert.Equal(t,
		[]string{"--broker-host", "127.0.0.1", "--broker-port", "6000", "--port", "6001"},
		ctx.Sp.Calls[1].Args)

	require.Len(t, *delays, 2)
	assert.Equal(t, 250*time.Millisecond, (*delays)[0])
}

func TestDisabledInConfig(t *testing.T) {
	stubSleep(t)
	cfg := commandtest.TestConfig()
	cfg.Commands = map[string]map[string]any{
		"localtest": {"enabled": false},
	}
	ctx := commandtest.NewContext(cfg)

	result := Run(ctx)

	require.Error(t, result.Error)
	assert.Empty(t, ctx.Sp.Calls)
}
