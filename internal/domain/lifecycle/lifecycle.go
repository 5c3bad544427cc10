// Package lifecycle holds shared timing constants for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx start/stop hooks such as DB ping and server shutdown.
const DefaultTimeout = 10 * time.Second
