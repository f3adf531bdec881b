package sdk

import (
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// DefaultNamespace scopes host interactions when callers do not pick a
// namespace of their own.
const DefaultNamespace = "capstan"

// EntryPoint is the waPC function name hosts invoke to hand a request to the
// guest. Hosts and guests must agree on it, so it is fixed rather than
// configurable.
const EntryPoint = "handler"

// Handler is the guest entry point. It receives the raw request payload from
// the host and returns the response payload.
type Handler func([]byte) ([]byte, error)

// Config provides configuration options for SDK initialization.
type Config struct {
	// Namespace controls the function namespace to use for host callbacks.
	// If empty, DefaultNamespace is used.
	Namespace string

	// Handler is registered under EntryPoint as the guest entry point.
	Handler Handler
}

// RuntimeConfig carries the configuration shared by capability clients.
type RuntimeConfig struct {
	// Namespace is the function namespace used to scope host interactions.
	Namespace string
}

// Normalize returns a copy of the runtime configuration with defaults
// applied. Capability clients call this so a zero-value RuntimeConfig is
// always usable.
func (r RuntimeConfig) Normalize() RuntimeConfig {
	if r.Namespace == "" {
		r.Namespace = DefaultNamespace
	}
	return r
}

// SDK represents the initialized runtime with a registered waPC handler.
type SDK struct {
	runtime RuntimeConfig
	handler Handler
}

// New validates the configuration, registers the handler with waPC under
// EntryPoint, and returns the initialized runtime. Calling New again replaces
// the registered entry point; each returned SDK keeps its own configuration
// snapshot.
func New(config Config) (*SDK, error) {
	if config.Handler == nil {
		return nil, ErrHandlerNil
	}

	s := &SDK{
		runtime: RuntimeConfig{Namespace: config.Namespace}.Normalize(),
		handler: config.Handler,
	}

	wapc.RegisterFunction(EntryPoint, wapc.Function(s.handler))

	return s, nil
}

// Config returns the current runtime configuration snapshot.
func (s *SDK) Config() RuntimeConfig { return s.runtime }
