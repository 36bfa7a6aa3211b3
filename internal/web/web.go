// Package web implements an HTMX-based web application mirroring the TUI functionality.
//
// # HTMX Web Application Implementation Plan
//
// # Architecture
//
// The web app replicates the four-view TUI workflow using server-side rendering
// with HTMX for dynamic updates. Each view corresponds to a template and handler:
//
//  1. Genre Browser: Server-rendered grid of genres with hero artist cards
//  2. Artist Search: Debounced hx-get input swapping a results partial
//  3. Compose: Prompt form with energy slider and live selection summary
//  4. Result: Preview text or created playlist link
//
// Core Components
//
//   - HTTP Server: net/http server with html/template rendering
//   - Service Integration: Uses the same services.Service as the TUI
//   - Session Management: Cookie-based sessions carrying the active username
//   - Debounce: hx-trigger="keyup changed delay:300ms" replaces the client timer
//
// Routes
//
//	GET  /                      → Genre browser (requires a connected account)
//	GET  /connect               → Spotify connect initiation
//	GET  /connect/done          → Connect completion marker
//	GET  /search                → HTMX partial: artist search results
//	POST /selection/genres      → Toggle a genre, return updated summary partial
//	POST /selection/artists     → Add an artist, return updated summary partial
//	POST /preview               → Preview partial for the composed request
//	POST /create                → Create the playlist, return result view
//
// Templates
//
//   - base.html: Layout with navigation, connection status
//   - genres.html: Hero cards with hx-post on toggle
//   - search.html: Partial template for search results
//   - compose.html: Prompt form, energy slider, selection summary
//   - result.html: Preview text or playlist link
//
// # State Management
//
// Unlike the TUI's in-memory engine, the web app persists selection state in:
//   - Session cookies: Active username and selected genre/artist IDs
//   - HistoryEntry records: Created playlists across sessions
//
// # Search Freshness
//
// The browser serializes HTMX swaps, so superseded responses cannot land out
// of order the way they can in the TUI; hx-sync="this:replace" on the search
// input aborts in-flight requests when a newer keystroke arrives.
//
// Connect Flow
//
//  1. User visits /, redirected to /connect if not connected
//  2. Backend returns the authorization URL; the browser follows it
//  3. Backend redirects to /connect/done?connected=username on success
//
// Status: planned, not yet implemented. The TUI remains the primary client.
package web
