package parameter

import "time"

// Loop timing
const (
	// TickInterval is the automatic navigation period when no key is pressed
	TickInterval = 100 * time.Millisecond

	// WatchdogTimeout ends the run after this long without a manual move, 0 disables
	WatchdogTimeout = 10 * time.Second

	// IntentBufferSize is the capacity of the input intent channel
	IntentBufferSize = 64
)

// Snapshot feed
const (
	// FeedMaxRate caps snapshot broadcasts per second
	FeedMaxRate = 20

	// FeedSendBuffer is the per-client outbound queue; slow clients drop frames beyond it
	FeedSendBuffer = 8

	// FeedWriteTimeout bounds a single websocket write
	FeedWriteTimeout = 2 * time.Second
)
