// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long startup probes and graceful shutdown may take.
const DefaultTimeout = 10 * time.Second
