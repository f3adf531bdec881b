package log

import (
	sdk "github.com/capstan-project/sdk"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const capabilityName = "logging"

// MessageSizeLimit is the capacity of the host-side log line buffer in bytes.
// Rendered messages are capped at MessageSizeLimit-1 bytes, reserving the
// final byte for the terminator the host contract requires.
const MessageSizeLimit = 1024

// Level tags understood by stock hosts. Levels are forwarded to the host
// verbatim, so hosts may accept tags beyond this set.
const (
	LevelDebug   = "debug"
	LevelVerbose = "verbose"
	LevelNotice  = "notice"
	LevelWarning = "warning"
)

// HostCall defines the waPC host function signature used to deliver log lines.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client renders printf-style templates and forwards each rendered line to
// the host runtime.
type Client interface {
	// Log renders format with args and forwards the result under the given
	// level tag. The host is invoked exactly once per call, including for
	// empty messages.
	Log(level, format string, args ...any)

	Debug(format string, args ...any)
	Verbose(format string, args ...any)
	Notice(format string, args ...any)
	Warning(format string, args ...any)
}

// Config controls how a Client instance interacts with the host runtime.
type Config struct {
	// SDKConfig provides the runtime namespace used for host calls.
	SDKConfig sdk.RuntimeConfig

	// HostCall overrides the waPC host function used to deliver log lines.
	HostCall HostCall
}

// client implements Client using the configured host call entrypoint.
type client struct {
	runtime  sdk.RuntimeConfig
	hostCall HostCall
}

// New creates a Client that emits rendered log lines through the host
// logging capability.
func New(cfg Config) (Client, error) {
	hostCall := cfg.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &client{runtime: cfg.SDKConfig.Normalize(), hostCall: hostCall}, nil
}

// Log renders the template and forwards (level, message) to the host.
// Delivery is best effort; host call results are discarded because the
// logging contract has no error channel.
func (c *client) Log(level, format string, args ...any) {
	msg := render(format, args)
	_, _ = c.hostCall(c.runtime.Namespace, capabilityName, level, []byte(msg))
}

func (c *client) Debug(format string, args ...any)   { c.Log(LevelDebug, format, args...) }
func (c *client) Verbose(format string, args ...any) { c.Log(LevelVerbose, format, args...) }
func (c *client) Notice(format string, args ...any)  { c.Log(LevelNotice, format, args...) }
func (c *client) Warning(format string, args ...any) { c.Log(LevelWarning, format, args...) }
