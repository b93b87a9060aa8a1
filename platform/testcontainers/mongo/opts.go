package mongo

// Option tunes the container before it is started.
type Option func(*Config)

// WithNetworkName attaches the container to an existing docker network
// under the "mongo" alias.
func WithNetworkName(network string) Option {
	return func(c *Config) { c.NetworkName = network }
}

func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

// WithDatabase sets the database created on init and returned by
// Container.Database.
func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

// WithCredentials sets the root user. The auth source stays "admin"
// unless overridden with WithAuthSource.
func WithCredentials(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithAuthSource(authDB string) Option {
	return func(c *Config) { c.AuthDB = authDB }
}

func WithLogger(l Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
