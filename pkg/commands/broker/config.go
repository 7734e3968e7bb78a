package broker

// Config represents broker module configuration
type Config struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultConfig returns default broker configuration
func DefaultConfig() Config {
	return Config{
		Enabled: true,
	}
}
