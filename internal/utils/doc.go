// Package utils provides the shared low-level helpers used by the provider
// adapters and the detector. It covers HTTP round-trips for both synchronous
// JSON calls and streaming (SSE) reads, plus small string and pointer
// conveniences.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips, [DoGet] for
// probe-style GET requests where the status code is the signal, and
// [DoPostStream] together with [SSEScanner] for Server-Sent Events streaming.
package utils
