// Package models defines domain entities and persistence interfaces for the vibelist client.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing backend data
//   - [Artist] : Artist metadata from search results and steering selections
//   - [GenreHero] : Representative artist imagery for a genre card
//   - [CreatedPlaylist] : The outcome of a playlist creation request
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [HistoryEntry] : Locally recorded playlist creations
//
// Persistent entities implement the Model interface providing ID generation, timestamps, validation, and soft delete support.
// The Repository[T] interface defines standard CRUD operations for database access.
package models
