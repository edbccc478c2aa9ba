// Package timeouts defines shared timeout constants used across services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Conversion caps a single conversion request, including decoding and
// rendering. The arithmetic itself completes in microseconds.
const Conversion = 2 * time.Second

// TelemetryShutdown caps how long pending spans may take to flush.
const TelemetryShutdown = 5 * time.Second
