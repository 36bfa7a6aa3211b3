// Package repositories provides the persistence layer for locally recorded data.
//
// Each repository implements models.Repository[T] for a specific entity type,
// handling CRUD operations, soft deletes, and sequence generation. The only
// entity today is the playlist creation history; interactive engine state is
// ephemeral and never touches this layer.
package repositories
