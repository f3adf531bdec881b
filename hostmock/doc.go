/*
Package hostmock provides a friendly pretend host for waPC calls.

It's designed primarily for SDK development and advanced tests where you want
to validate exactly what a component is sending to the Capstan host-without
needing a real host running. No real hosts were harmed in the making of these tests.

Why use hostmock?

  - Validate routing: ensure calls use the expected namespace, capability, and function when you set them.
  - Inspect payloads: plug in a PayloadValidator to assert payload contents.
  - Script responses: return custom bytes or simulate failures.
  - Count deliveries: every call lands in a recorded log (Calls, CallCount,
    LastCall), so "invoked exactly once" style assertions need no globals and
    stay safe under parallel tests.

When should I use it?

Reach for hostmock when you need to assert waPC payloads directly, validate
capability routing, or simulate host-side failures without spinning up a full
environment.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "capstan",
	  ExpectedCapability: "logging",
	  ExpectedFunction:   "notice",
	  PayloadValidator: func(p []byte) error {
	    // Assert the rendered message here
	    return nil
	  },
	})

	// Inject into a component under test
	resp, err := m.HostCall("capstan", "logging", "notice", []byte("payload"))

Behavior

  - Every call is recorded before validation, failures included.
  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise, HostCall enforces ExpectedNamespace/Capability/Function and runs
    PayloadValidator when provided. If everything is in order, Response (when set)
    provides the return bytes; otherwise it returns nil.

Tips

  - Use table-driven tests for different routing and payload cases.
  - Keep the validator small and focused-decode, assert, return.
  - Leave fields blank when you want a wildcard—hostmock only enforces values you set.
*/
package hostmock
