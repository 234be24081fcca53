// Package remote contains the thin adapters that translate domain operations
// into backend platform calls: one method per backend call, no retries, no
// batching, no pagination.
//
// Every error raised by a backend call crosses this package's boundary as
// the single *Error kind carrying the flattened message; callers never see
// driver-specific error types.
package remote
