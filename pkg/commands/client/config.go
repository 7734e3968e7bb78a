package client

// Config represents client module configuration
type Config struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns default client configuration
func DefaultConfig() Config {
	return Config{
		Enabled: true,
	}
}
