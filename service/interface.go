package service

// Service is a long-lived subsystem owned by a Hub
// The hub calls Init in dependency order, then Start, and Stop in reverse
type Service interface {
	Name() string

	// Dependencies names services whose Init must run first
	Dependencies() []string

	Init(args ...any) error
	Start() error

	// Stop releases whatever Init or Start acquired
	// It must be safe more than once, after a failed Start, and after Init without Start:
	// a failed InitAll stops the services it already initialized
	Stop() error
}
