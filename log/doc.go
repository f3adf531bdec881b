/*
Package log offers a client for emitting log lines from Capstan WebAssembly
functions to the host runtime.

The client accepts printf-style templates, renders them into a bounded
message, and forwards (level, message) to the host logging capability exactly
once per call. Levels are opaque tags passed through verbatim; convenience
methods cover the tags stock hosts understand (Debug, Verbose, Notice,
Warning).

Rendering is total: there is no error return. Messages longer than the host
buffer allows are truncated at MessageSizeLimit-1 bytes, surplus arguments
are ignored, and a template with more placeholders than arguments renders
fmt's missing-argument marker in place of the absent values.
*/
package log
