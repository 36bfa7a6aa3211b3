package models

import (
	"time"
)

// Model defines the base interface for all persistent models in the vibelist client.
// Implementations include HistoryEntry.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks if the model's data is valid and returns an error if not
}

// Repository defines the interface for data access operations.
// Implementations handle database interactions for specific model types.
type Repository[T Model] interface {
	Create(model T) error                      // Create inserts a new model into the database
	Get(id string) (T, error)                  // Get retrieves a model by its ID
	Update(model T) error                      // Update modifies an existing model in the database
	Delete(id string) error                    // Delete removes a model from the database by its ID
	List(criteria map[string]any) ([]T, error) // List retrieves all models matching the given criteria
}

// Artist represents an artist returned by search or held in the steering selection.
type Artist struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image"` // may be empty when the artist has no images
}

// GenreHero represents the artist chosen by the backend to illustrate a genre.
type GenreHero struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image"`
}

// CreatedPlaylist represents the backend's response to a create request.
//
// URL is empty when the backend generated nothing to open; Message then
// carries the backend's explanation.
type CreatedPlaylist struct {
	URL     string `json:"playlist_url"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}
