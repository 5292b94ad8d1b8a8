// Package service manages long-lived infrastructure around the frame loop
package service

// Service is the lifecycle contract for background subsystems
// (config watcher, audio output, journal writer)
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags
//  3. Start() - launch goroutines
//  4. Stop() - halt and release, idempotent
type Service interface {
	// Name is the unique key used by Dependencies
	Name() string

	// Dependencies lists services that must Init and Start first
	Dependencies() []string

	// Init configures the service; args are service-specific
	Init(args ...any) error

	// Start runs after every service has initialized
	Start() error

	// Stop must be safe to call more than once
	Stop() error
}
