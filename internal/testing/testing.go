// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/services"
)

// MockService is a configurable test double for [services.Service].
//
// Unset function fields return zero values.
type MockService struct {
	ListGenresFunc      func(ctx context.Context, username string) ([]string, error)
	GenreHeroesFunc     func(ctx context.Context, username string, genres []string) (map[string]models.GenreHero, error)
	SearchArtistsFunc   func(ctx context.Context, username, query string, limit int) ([]models.Artist, error)
	PreviewPlaylistFunc func(ctx context.Context, prompt string) (string, error)
	CreatePlaylistFunc  func(ctx context.Context, req services.CreateRequest) (*models.CreatedPlaylist, error)
	LoginURLFunc        func(ctx context.Context, username string) (string, error)
	ConnectedFunc       func(ctx context.Context, username string) (bool, error)
}

var _ services.Service = (*MockService)(nil)

func (m *MockService) ListGenres(ctx context.Context, username string) ([]string, error) {
	if m.ListGenresFunc != nil {
		return m.ListGenresFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockService) GenreHeroes(ctx context.Context, username string, genres []string) (map[string]models.GenreHero, error) {
	if m.GenreHeroesFunc != nil {
		return m.GenreHeroesFunc(ctx, username, genres)
	}
	return map[string]models.GenreHero{}, nil
}

func (m *MockService) SearchArtists(ctx context.Context, username, query string, limit int) ([]models.Artist, error) {
	if m.SearchArtistsFunc != nil {
		return m.SearchArtistsFunc(ctx, username, query, limit)
	}
	return nil, nil
}

func (m *MockService) PreviewPlaylist(ctx context.Context, prompt string) (string, error) {
	if m.PreviewPlaylistFunc != nil {
		return m.PreviewPlaylistFunc(ctx, prompt)
	}
	return "", nil
}

func (m *MockService) CreatePlaylist(ctx context.Context, req services.CreateRequest) (*models.CreatedPlaylist, error) {
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockService) LoginURL(ctx context.Context, username string) (string, error) {
	if m.LoginURLFunc != nil {
		return m.LoginURLFunc(ctx, username)
	}
	return "", nil
}

func (m *MockService) Connected(ctx context.Context, username string) (bool, error) {
	if m.ConnectedFunc != nil {
		return m.ConnectedFunc(ctx, username)
	}
	return false, nil
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
