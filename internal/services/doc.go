// Package services implements HTTP clients for the vibelist backend.
//
// The backend is a FastAPI proxy that owns Spotify OAuth, token storage, and
// the vibe-analysis engine. The client identifies itself purely through a
// username query parameter; no credentials live on this side of the wire.
package services
