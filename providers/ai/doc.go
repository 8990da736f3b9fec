// Package ai defines the vendor-neutral chat data model and the Provider
// contract that every protocol adapter implements. Callers build
// [Message] slices and a [RequestConfig], pick an adapter (directly or via
// the detect package), and drive it uniformly through [Provider] without
// knowing which vendor wire protocol is in play.
//
// Streaming responses are modeled as a [ChatStream], a finite, cancellable
// sequence of [ResponseChunk] values built on range-over-func iterators.
package ai
