package worker

// Config represents worker module configuration
type Config struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns default worker configuration
func DefaultConfig() Config {
	return Config{
		Enabled: true,
	}
}
