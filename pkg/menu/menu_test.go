package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/unoup/pkg/commands/commandtest"
	"github.com/lvim-tech/unoup/pkg/config"

	_ "github.com/lvim-tech/unoup/pkg/commands/broker"
	_ "github.com/lvim-tech/unoup/pkg/commands/client"
	_ "github.com/lvim-tech/unoup/pkg/commands/localtest"
	_ "github.com/lvim-tech/unoup/pkg/commands/worker"
)

func runMenu(t *testing.T, input string, cfg *config.Config) (*commandtest.Spawner, string) {
	t.Helper()

	spawner := &commandtest.Spawner{}
	var out bytes.Buffer

	ctx := NewContext(strings.NewReader(input), &out, spawner, cfg)
	err := Run(ctx)
	require.NoError(t, err)

	return spawner, out.String()
}

func TestExitSpawnsNothing(t *testing.T) {
	spawner, out := runMenu(t, "5\n", commandtest.TestConfig())

	assert.Empty(t, spawner.Calls)
	assert.Contains(t, out, "1) Start broker")
	assert.Contains(t, out, "5) Exit")
}

func TestInvalidInputShowsMenuAgain(t *testing.T) {
	spawner, out := runMenu(t, "9\nbanana\n\n5\n", commandtest.TestConfig())

	assert.Empty(t, spawner.Calls)
	assert.Contains(t, out, "Invalid option")
	// менюто се показва отново след всеки невалиден избор
	assert.Equal(t, 4, strings.Count(out, "5) Exit"))
}

func TestEOFTerminatesLoop(t *testing.T) {
	spawner, _ := runMenu(t, "", commandtest.TestConfig())

	assert.Empty(t, spawner.Calls)
}

func TestBrokerOptionSpawnsBroker(t *testing.T) {
	spawner, out := runMenu(t, "1\n5\n", commandtest.TestConfig())

	require.Len(t, spawner.Calls, 1)
	assert.Equal(t, "uno-broker", spawner.Calls[0].Program)
	assert.Empty(t, spawner.Calls[0].Args)
	// командата докладва на същия stream като менюто
	assert.Contains(t, out, "Broker started")
}

func TestFallbackOrderFromRegistry(t *testing.T) {
	cfg := commandtest.TestConfig()
	cfg.Menu.ModuleOrder = nil

	spawner, out := runMenu(t, "5\n", cfg)

	assert.Empty(t, spawner.Calls)
	// стабилен азбучен ред: broker, client, localtest, worker
	assert.Contains(t, out, "1) Start broker")
	assert.Contains(t, out, "2) Start client")
	assert.Contains(t, out, "4) Start worker")
	assert.Contains(t, out, "5) Exit")
}

func TestWorkerOptionPromptsAndSpawns(t *testing.T) {
	// избор 2, празен host, празен port, после exit
	spawner, out := runMenu(t, "2\n\n\n5\n", commandtest.TestConfig())

	require.Len(t, spawner.Calls, 1)
	assert.Equal(t, "uno-worker", spawner.Calls[0].Program)
	assert.Equal(t,
		[]string{"--broker-host", "127.0.0.1", "--broker-port", "6000", "--port", "5555"},
		spawner.Calls[0].Args)
	assert.Contains(t, out, "Enter broker IP")
	assert.Contains(t, out, "Enter worker port")
}

func TestAskBlankReturnsDefault(t *testing.T) {
	ctx := NewContext(strings.NewReader("\n"), &bytes.Buffer{}, &commandtest.Spawner{}, commandtest.TestConfig())

	value, err := ctx.Ask("Enter broker IP", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", value)
}

func TestAskNonBlankReturnedVerbatim(t *testing.T) {
	ctx := NewContext(strings.NewReader("  10.0.0.5  \n"), &bytes.Buffer{}, &commandtest.Spawner{}, commandtest.TestConfig())

	value, err := ctx.Ask("Enter broker IP", "127.0.0.1")

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", value)
}
