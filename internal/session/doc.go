// Package session implements the client-side interaction state engine.
//
// The core abstraction is [Engine], which owns every piece of interactive
// state: the genre catalog and its hero imagery, the genre and artist
// selections, the in-flight artist search, and the steering parameters.
// Asynchronous completions (debounced searches, hero batches) are reported
// on a buffered event channel so the presentation layer never blocks.
//
// Correctness rests on three rules rather than heavy locking:
//
//   - last-intent-wins dispatch for searches ([Debouncer])
//   - a monotonically increasing sequence number per query stream, so a
//     slow, superseded response can never overwrite a newer one
//   - selection mutations happen atomically under the engine lock
package session
