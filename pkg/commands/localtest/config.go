package localtest

// Config represents localtest module configuration
type Config struct {
	Enabled      bool     `mapstructure:"enabled"`
	SpawnDelayMs int      `mapstructure:"spawn_delay_ms"`
	WorkerPorts  []string `mapstructure:"worker_ports"`
	Clients      int      `mapstructure:"clients"`
}

// DefaultConfig returns default localtest configuration
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SpawnDelayMs: 1000,
		WorkerPorts:  []string{"5555", "5556"},
		Clients:      2,
	}
}
