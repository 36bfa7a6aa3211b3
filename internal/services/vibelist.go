package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/shared"
)

const defaultBackendURL = "http://localhost:8000"

// VibeListService implements the [Service] interface against the vibelist
// backend. Endpoint shapes mirror the FastAPI proxy: all inputs travel as
// query parameters, responses are JSON envelopes, and errors carry a "detail"
// field.
type VibeListService struct {
	baseURL    string
	httpClient *http.Client
}

var _ Service = (*VibeListService)(nil)

// NewVibeListService creates a new backend client.
func NewVibeListService(baseURL string, client *http.Client) *VibeListService {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &VibeListService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

func (s *VibeListService) Name() string {
	return "VibeList"
}

// apiError represents the backend's error envelope.
type apiError struct {
	Detail string `json:"detail"`
}

// doRequest performs an HTTP request against the backend and decodes the JSON response into result.
//
// Non-2xx statuses become errors wrapping [shared.ErrAPIRequest], carrying the
// backend's detail message when one is present.
func (s *VibeListService) doRequest(ctx context.Context, method, path string, params url.Values, result any) error {
	endpoint := s.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Detail != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListGenres retrieves the genre catalog for the given username.
func (s *VibeListService) ListGenres(ctx context.Context, username string) ([]string, error) {
	params := url.Values{}
	params.Set("username", username)

	var response struct {
		Genres []string `json:"genres"`
	}

	if err := s.doRequest(ctx, http.MethodGet, "/spotify/genres", params, &response); err != nil {
		return nil, err
	}

	return response.Genres, nil
}

// GenreHeroes retrieves representative artists for the given genres.
//
// The backend answers 404 when no genre in the batch has a hero; callers
// treat any error as "this batch contributed nothing".
func (s *VibeListService) GenreHeroes(ctx context.Context, username string, genres []string) (map[string]models.GenreHero, error) {
	params := url.Values{}
	params.Set("username", username)
	params.Set("genres", strings.Join(genres, ","))

	heroes := make(map[string]models.GenreHero)
	if err := s.doRequest(ctx, http.MethodGet, "/spotify/genre_heroes", params, &heroes); err != nil {
		return nil, err
	}

	return heroes, nil
}

// SearchArtists performs a free-text artist search.
func (s *VibeListService) SearchArtists(ctx context.Context, username, query string, limit int) ([]models.Artist, error) {
	params := url.Values{}
	params.Set("username", username)
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var response struct {
		Artists []models.Artist `json:"artists"`
	}

	if err := s.doRequest(ctx, http.MethodGet, "/spotify/search_artists", params, &response); err != nil {
		return nil, err
	}

	return response.Artists, nil
}

// PreviewPlaylist returns the backend's text rendering of a vibe prompt.
func (s *VibeListService) PreviewPlaylist(ctx context.Context, prompt string) (string, error) {
	params := url.Values{}
	params.Set("prompt", prompt)

	var response struct {
		PlaylistQuery string `json:"playlist_query"`
	}

	if err := s.doRequest(ctx, http.MethodPost, "/playlist", params, &response); err != nil {
		return "", err
	}

	return response.PlaylistQuery, nil
}

// CreatePlaylist materializes a playlist from the full steering payload.
func (s *VibeListService) CreatePlaylist(ctx context.Context, req CreateRequest) (*models.CreatedPlaylist, error) {
	params := url.Values{}
	params.Set("prompt", req.Prompt)
	params.Set("username", req.Username)
	params.Set("public", strconv.FormatBool(req.Public))

	// Empty selections serialize as empty strings, not omitted fields.
	params.Set("artist_ids", strings.Join(req.ArtistIDs, ","))
	params.Set("genres", strings.Join(req.Genres, ","))

	if req.Limit > 0 {
		params.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Energy != nil {
		params.Set("energy", strconv.FormatFloat(*req.Energy, 'g', -1, 64))
	}

	var created models.CreatedPlaylist
	if err := s.doRequest(ctx, http.MethodPost, "/playlist/create", params, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// LoginURL retrieves the Spotify authorization URL for the connect flow.
func (s *VibeListService) LoginURL(ctx context.Context, username string) (string, error) {
	params := url.Values{}
	params.Set("username", username)

	var response struct {
		AuthURL string `json:"auth_url"`
	}

	if err := s.doRequest(ctx, http.MethodGet, "/spotify/login", params, &response); err != nil {
		return "", err
	}

	return response.AuthURL, nil
}

// Connected reports whether the backend holds a Spotify session for username.
func (s *VibeListService) Connected(ctx context.Context, username string) (bool, error) {
	params := url.Values{}
	params.Set("username", username)

	var response struct {
		OK        bool   `json:"ok"`
		Connected bool   `json:"connected"`
		User      string `json:"user"`
	}

	if err := s.doRequest(ctx, http.MethodGet, "/health/spotify", params, &response); err != nil {
		return false, err
	}

	return response.Connected, nil
}
