/*
Package sdk provides the core entry point and runtime configuration for
building Capstan WebAssembly functions.

New registers a guest Handler with the host under the fixed EntryPoint name.
Capability clients (log, kv) share the RuntimeConfig type and call its
Normalize method so a zero value falls back to DefaultNamespace. The package
also carries the error taxonomy for host interactions and ValidateStatus,
which maps host response statuses onto it.
*/
package sdk
