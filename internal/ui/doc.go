// Package ui implements the interactive terminal UI for vibe composition.
//
// The TUI is a thin presentation layer over [session.Engine]: every
// keystroke feeds the engine's documented operations, and asynchronous
// completions come back through the engine's event channel, consumed with a
// wait-for-event command so the update loop never blocks.
//
// Views:
//
//  1. Genre browser: the catalog with hero artists, toggle to select
//  2. Artist search: debounced free-text search with add-to-selection
//  3. Compose: vibe prompt, energy target, and selection summary
//  4. Result: preview text or the created playlist with an open action
package ui
