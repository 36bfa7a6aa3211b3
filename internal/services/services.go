package services

import (
	"context"

	"github.com/desertthunder/vibelist/internal/models"
)

// Service defines the operations the vibelist backend exposes to the client.
type Service interface {
	// ListGenres retrieves the ordered genre catalog for the given username.
	ListGenres(ctx context.Context, username string) ([]string, error)

	// GenreHeroes retrieves representative artists for a batch of genres.
	// The result is partial: genres without a hero are simply absent.
	GenreHeroes(ctx context.Context, username string, genres []string) (map[string]models.GenreHero, error)

	// SearchArtists performs a free-text artist search.
	SearchArtists(ctx context.Context, username, query string, limit int) ([]models.Artist, error)

	// PreviewPlaylist returns the backend's text rendering of a vibe prompt.
	PreviewPlaylist(ctx context.Context, prompt string) (string, error)

	// CreatePlaylist materializes a playlist from the full steering payload.
	CreatePlaylist(ctx context.Context, req CreateRequest) (*models.CreatedPlaylist, error)

	// LoginURL retrieves the Spotify authorization URL for the connect flow.
	LoginURL(ctx context.Context, username string) (string, error)

	// Connected reports whether the backend holds a Spotify session for username.
	Connected(ctx context.Context, username string) (bool, error)

	// Name returns the name of the backend service.
	Name() string
}

// CreateRequest carries the steering payload for playlist creation.
//
// ArtistIDs and Genres serialize as comma-joined lists and are always sent,
// empty or not. Energy is sent only when non-nil. Prompt may be empty; the
// backend can steer from selections alone.
type CreateRequest struct {
	Prompt    string
	Username  string
	ArtistIDs []string
	Genres    []string
	Limit     int
	Energy    *float64
	Public    bool
}
