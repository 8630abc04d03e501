package jsondriver

import "github.com/lambda-lang/core/location"

// Driver decodes JSON into the value runtime. The zero value is not
// usable; construct one with New.
type Driver struct {
	strictJSON     bool
	trackLocations bool
	registry       location.PositionRegistry
}

// Option configures a Driver, the same functional-options pattern used
// throughout this module.
type Option func(*Driver)

// New creates a Driver. registry may be nil unless WithTrackLocations is
// set.
func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithStrictJSON disables jsonc comment/trailing-comma preprocessing,
// parsing with encoding/json directly (teacher: WithStrictJSON).
func WithStrictJSON(strict bool) Option {
	return func(d *Driver) { d.strictJSON = strict }
}

// WithTrackLocations enables byte-offset-to-position conversion for
// decode diagnostics and Provenance-free span attachment. Requires a
// non-nil registry, passed via WithRegistry.
func WithTrackLocations(track bool) Option {
	return func(d *Driver) { d.trackLocations = track }
}

// WithRegistry supplies the PositionRegistry used when WithTrackLocations
// is enabled.
func WithRegistry(registry location.PositionRegistry) Option {
	return func(d *Driver) { d.registry = registry }
}
