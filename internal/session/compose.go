package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/services"
	"github.com/desertthunder/vibelist/internal/shared"
)

// ValidatePrompt trims the prompt and rejects an empty one. Preview refuses
// to hit the network without a prompt; Create deliberately does not share
// this requirement, since selections and energy can steer on their own.
func ValidatePrompt(prompt string) (string, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return "", shared.ErrEmptyPrompt
	}
	return trimmed, nil
}

// Preview asks the backend to render the current prompt as playlist text.
//
// Validation failures are local; no network call is made. While a preview is
// outstanding the engine reports Previewing so callers can disable
// re-submission.
func (e *Engine) Preview(ctx context.Context) (string, error) {
	prompt, err := ValidatePrompt(e.Prompt())
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	if e.previewing {
		e.mu.Unlock()
		return "", fmt.Errorf("%w: preview already in flight", shared.ErrInvalidInput)
	}
	e.previewing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.previewing = false
		e.mu.Unlock()
	}()

	return e.svc.PreviewPlaylist(ctx, prompt)
}

// Create materializes a playlist from the current steering state.
//
// The request is a read-only projection: composing it never mutates the
// selections or steering parameters.
func (e *Engine) Create(ctx context.Context) (*models.CreatedPlaylist, error) {
	e.mu.Lock()
	if e.creating {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: create already in flight", shared.ErrInvalidInput)
	}
	e.creating = true
	req := e.composeCreateLocked()
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.creating = false
		e.mu.Unlock()
	}()

	return e.svc.CreatePlaylist(ctx, req)
}

// ComposeCreate returns the create payload the engine would send right now.
func (e *Engine) ComposeCreate() services.CreateRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.composeCreateLocked()
}

func (e *Engine) composeCreateLocked() services.CreateRequest {
	var energy *float64
	if e.energy != nil {
		v := *e.energy
		energy = &v
	}

	return services.CreateRequest{
		Prompt:    e.prompt,
		Username:  e.username,
		ArtistIDs: e.artists.IDs(),
		Genres:    e.genres.Values(),
		Limit:     e.limit,
		Energy:    energy,
		Public:    e.public,
	}
}
