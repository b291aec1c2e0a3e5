// Package lifecycle holds process-wide start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of every long-running component.
const DefaultTimeout = 10 * time.Second
