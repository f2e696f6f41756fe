// Package timeouts defines shared timeout constants used across the
// portfolio processes so the durations stay discoverable.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time spent writing one HTTP response.
const Write = 15 * time.Second

// Idle closes keep-alive connections that stay quiet for this long.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// StorageOpen bounds opening and migrating the local inbox database.
const StorageOpen = 5 * time.Second
