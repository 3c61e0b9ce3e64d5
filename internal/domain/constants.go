package domain

import "time"

// Default timeout and duration constants.
const (
	// HTTP timeouts.
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 60 * time.Second

	// Pillar source timeouts.
	DefaultSourceTimeout = 10 * time.Second

	// Shutdown timeout.
	DefaultShutdownTimeout = 30 * time.Second
)

// Pillar layout.
const (
	// PillarKeySeparator joins key segments.
	PillarKeySeparator = ":"
	// PillarRoot is the top-level pillar namespace.
	PillarRoot = "ceph-salt"
)
