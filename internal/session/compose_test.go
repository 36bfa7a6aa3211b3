package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/services"
	"github.com/desertthunder/vibelist/internal/shared"
	tu "github.com/desertthunder/vibelist/internal/testing"
)

func TestValidatePrompt(t *testing.T) {
	t.Run("rejects empty", func(t *testing.T) {
		if _, err := ValidatePrompt(""); !errors.Is(err, shared.ErrEmptyPrompt) {
			t.Errorf("expected ErrEmptyPrompt, got %v", err)
		}
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		if _, err := ValidatePrompt("   \t"); !errors.Is(err, shared.ErrEmptyPrompt) {
			t.Errorf("expected ErrEmptyPrompt, got %v", err)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := ValidatePrompt("  rainy midnight drive  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "rainy midnight drive" {
			t.Errorf("expected trimmed prompt, got %q", got)
		}
	})
}

func TestEnginePreview(t *testing.T) {
	ctx := context.Background()

	t.Run("empty prompt fails locally", func(t *testing.T) {
		calls := 0
		svc := &tu.MockService{
			PreviewPlaylistFunc: func(ctx context.Context, prompt string) (string, error) {
				calls++
				return "", nil
			},
		}

		e := NewEngine(ctx, svc, "dana", Opts{})
		defer e.Close()

		if _, err := e.Preview(ctx); !errors.Is(err, shared.ErrEmptyPrompt) {
			t.Errorf("expected ErrEmptyPrompt, got %v", err)
		}
		if calls != 0 {
			t.Errorf("expected no network call, got %d", calls)
		}
	})

	t.Run("sends the trimmed prompt", func(t *testing.T) {
		svc := &tu.MockService{
			PreviewPlaylistFunc: func(ctx context.Context, prompt string) (string, error) {
				if prompt != "chill study beats" {
					t.Errorf("expected trimmed prompt, got %q", prompt)
				}
				return "lofi chill instrumental", nil
			},
		}

		e := NewEngine(ctx, svc, "dana", Opts{})
		defer e.Close()

		e.SetPrompt("  chill study beats  ")

		got, err := e.Preview(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "lofi chill instrumental" {
			t.Errorf("unexpected preview %q", got)
		}
	})

	t.Run("surfaces backend failure", func(t *testing.T) {
		svc := &tu.MockService{
			PreviewPlaylistFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", errors.New("backend down")
			},
		}

		e := NewEngine(ctx, svc, "dana", Opts{})
		defer e.Close()

		e.SetPrompt("anything")
		if _, err := e.Preview(ctx); err == nil {
			t.Error("expected error to surface")
		}
	})
}

func TestEngineCompose(t *testing.T) {
	ctx := context.Background()

	t.Run("serializes the full steering state", func(t *testing.T) {
		e := NewEngine(ctx, &tu.MockService{}, "dana", Opts{Limit: 20, Public: true})
		defer e.Close()

		e.SetPrompt("sunset rooftop")
		e.SetEnergy(0.7)
		e.ToggleGenre("rock")
		e.ToggleGenre("ambient")
		e.AddArtist(models.Artist{ID: "a2", Name: "J Dilla"})
		e.AddArtist(models.Artist{ID: "a1", Name: "Erykah Badu"})

		req := e.ComposeCreate()

		if req.Prompt != "sunset rooftop" {
			t.Errorf("unexpected prompt %q", req.Prompt)
		}
		if req.Username != "dana" {
			t.Errorf("unexpected username %q", req.Username)
		}
		if want := []string{"ambient", "rock"}; !reflect.DeepEqual(req.Genres, want) {
			t.Errorf("expected genres %v, got %v", want, req.Genres)
		}
		if want := []string{"a2", "a1"}; !reflect.DeepEqual(req.ArtistIDs, want) {
			t.Errorf("expected artist IDs in insertion order %v, got %v", want, req.ArtistIDs)
		}
		if req.Limit != 20 {
			t.Errorf("expected limit 20, got %d", req.Limit)
		}
		if req.Energy == nil || *req.Energy != 0.7 {
			t.Errorf("expected energy 0.7, got %v", req.Energy)
		}
		if !req.Public {
			t.Error("expected public flag set")
		}
	})

	t.Run("defaults apply when unset", func(t *testing.T) {
		e := NewEngine(ctx, &tu.MockService{}, "dana", Opts{})
		defer e.Close()

		req := e.ComposeCreate()

		if req.Limit != DefaultPlaylistLimit {
			t.Errorf("expected default limit, got %d", req.Limit)
		}
		if req.Energy == nil || *req.Energy != DefaultEnergy {
			t.Errorf("expected default energy, got %v", req.Energy)
		}
	})

	t.Run("energy is clamped", func(t *testing.T) {
		e := NewEngine(ctx, &tu.MockService{}, "dana", Opts{})
		defer e.Close()

		e.SetEnergy(1.5)
		if got := e.Energy(); got == nil || *got != 1 {
			t.Errorf("expected clamp to 1, got %v", got)
		}

		e.SetEnergy(-0.3)
		if got := e.Energy(); got == nil || *got != 0 {
			t.Errorf("expected clamp to 0, got %v", got)
		}
	})

	t.Run("composing does not mutate selections", func(t *testing.T) {
		e := NewEngine(ctx, &tu.MockService{}, "dana", Opts{})
		defer e.Close()

		e.ToggleGenre("jazz")
		e.AddArtist(models.Artist{ID: "a1", Name: "Erykah Badu"})

		req := e.ComposeCreate()
		req.Genres[0] = "mutated"
		req.ArtistIDs[0] = "mutated"

		if !e.GenreSelected("jazz") {
			t.Error("expected genre selection untouched")
		}
		if got := e.SelectedArtists(); got[0].ID != "a1" {
			t.Errorf("expected artist selection untouched, got %v", got)
		}
	})
}

func TestEngineCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty prompt still reaches the backend", func(t *testing.T) {
		var captured services.CreateRequest
		svc := &tu.MockService{
			CreatePlaylistFunc: func(ctx context.Context, req services.CreateRequest) (*models.CreatedPlaylist, error) {
				captured = req
				return &models.CreatedPlaylist{URL: "https://open.spotify.com/playlist/p1", Count: 15}, nil
			},
		}

		e := NewEngine(ctx, svc, "dana", Opts{})
		defer e.Close()

		e.ToggleGenre("jazz")

		created, err := e.Create(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.URL == "" || created.Count != 15 {
			t.Errorf("unexpected result %+v", created)
		}
		if captured.Prompt != "" {
			t.Errorf("expected empty prompt to pass through, got %q", captured.Prompt)
		}
		if !reflect.DeepEqual(captured.Genres, []string{"jazz"}) {
			t.Errorf("unexpected genres %v", captured.Genres)
		}
	})

	t.Run("backend failure surfaces", func(t *testing.T) {
		svc := &tu.MockService{
			CreatePlaylistFunc: func(ctx context.Context, req services.CreateRequest) (*models.CreatedPlaylist, error) {
				return nil, errors.New("spotify says no")
			},
		}

		e := NewEngine(ctx, svc, "dana", Opts{})
		defer e.Close()

		if _, err := e.Create(ctx); err == nil {
			t.Error("expected error to surface")
		}
	})
}
