package papercraft

import "go.uber.org/zap"

// DefaultPoolCapacity is the number of slots a Pool allocates before its first growth.
const DefaultPoolCapacity = 100

// Config holds global configuration for registries and pools
var Config config = config{
	logger:       zap.NewNop(),
	poolCapacity: DefaultPoolCapacity,
}

type config struct {
	logger       *zap.Logger
	poolCapacity int
}

// SetLogger configures the logger used for entity lifecycle messages. nil disables logging.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l.Named("ecs")
}

// Logger returns the configured logger
func (c *config) Logger() *zap.Logger {
	return c.logger
}

// SetPoolCapacity configures the initial capacity of pools created afterwards
func (c *config) SetPoolCapacity(n int) {
	if n < 1 {
		n = 1
	}
	c.poolCapacity = n
}

// PoolCapacity returns the initial capacity for new pools
func (c *config) PoolCapacity() int {
	return c.poolCapacity
}
