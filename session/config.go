package session

// Config holds session store parameters. Only the in-memory backend exists;
// the struct is the extension point for others.
type Config struct{}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {}

// New creates a Store from configuration.
func New(cfg *Config) (Store, error) {
	return NewMemoryStore(), nil
}
