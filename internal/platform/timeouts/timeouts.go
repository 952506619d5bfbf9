// Package timeouts defines shared HTTP timeout constants for snippetpad
// services.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Read caps the time spent reading a full request. Page requests carry no
// body, so this mostly bounds slow query strings.
const Read = 10 * time.Second

// Write caps the time spent writing a rendered page.
const Write = 10 * time.Second

// Idle bounds keep-alive connections between requests.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// TelemetryShutdown limits how long pending spans may take to flush on exit.
const TelemetryShutdown = 5 * time.Second
