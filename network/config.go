package network

import (
	"time"

	"github.com/lixenwraith/drone-sim/parameter"
)

// Config holds snapshot feed configuration
type Config struct {
	// Address to bind, empty disables the feed
	Listen string

	// MaxRate caps broadcasts per second, <=0 is unlimited
	MaxRate float64

	// SendBuffer is the per-client outbound queue
	SendBuffer int

	WriteTimeout time.Duration
	PongTimeout  time.Duration
}

// DefaultConfig returns a disabled feed with default limits
func DefaultConfig() *Config {
	return &Config{
		MaxRate:      parameter.FeedMaxRate,
		SendBuffer:   parameter.FeedSendBuffer,
		WriteTimeout: parameter.FeedWriteTimeout,
		PongTimeout:  60 * time.Second,
	}
}

// Enabled reports whether a listen address is configured
func (c *Config) Enabled() bool {
	return c.Listen != ""
}
