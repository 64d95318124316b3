// Package timeouts defines shared timeout constants used across the
// dashboard. Centralizing these values keeps the HTTP surface and the
// backend clients from drifting apart.
package timeouts

import "time"

// BackendRequest caps the time allowed for a single backend query issued
// while rendering a page.
const BackendRequest = 5 * time.Second

// ProviderRequest caps the time allowed for a call to the identity
// provider's token endpoint.
const ProviderRequest = 5 * time.Second

// ReadHeader limits how long the HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
