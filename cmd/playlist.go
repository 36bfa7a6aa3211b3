package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/repositories"
	"github.com/desertthunder/vibelist/internal/services"
	"github.com/desertthunder/vibelist/internal/session"
	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/urfave/cli/v3"
)

// PlaylistPreview shows the search query the backend derives from a prompt.
func (r *Runner) PlaylistPreview(ctx context.Context, cmd *cli.Command) error {
	prompt, err := session.ValidatePrompt(cmd.String("prompt"))
	if err != nil {
		return err
	}

	r.logger.Infof("previewing playlist for prompt %q", prompt)

	query, err := r.svc.PreviewPlaylist(ctx, prompt)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("Prompt: %s\n", prompt)
	r.writePlain("Query:  %s\n", query)

	return nil
}

// PlaylistCreate creates a playlist on the connected account and records it locally.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	username, err := r.username(cmd)
	if err != nil {
		return err
	}

	req := services.CreateRequest{
		Prompt:    cmd.String("prompt"),
		Username:  username,
		Genres:    cmd.StringSlice("genre"),
		ArtistIDs: cmd.StringSlice("artist"),
		Limit:     int(cmd.Int("limit")),
		Public:    cmd.Bool("public"),
	}
	if energy := cmd.Float("energy"); energy >= 0 {
		if energy > 1 {
			return fmt.Errorf("%w: energy must be between 0 and 1", shared.ErrInvalidArgument)
		}
		req.Energy = &energy
	}

	r.logger.Infof("creating playlist for %v", username)

	created, err := r.svc.CreatePlaylist(ctx, req)
	if err != nil {
		return fmt.Errorf("playlist creation failed: %w", err)
	}

	if created.URL == "" {
		if created.Message != "" {
			r.writePlain("%s\n", created.Message)
		} else {
			r.writePlain("Playlist created, but the backend returned no link.\n")
		}
		return nil
	}

	r.writePlainln("✓ Playlist created")
	r.writePlain("  Tracks: %d\n", created.Count)
	r.writePlain("  URL: %s\n", created.URL)

	r.recordHistory(username, req.Prompt, created)

	if cmd.Bool("open") {
		if err := shared.OpenBrowser(created.URL); err != nil {
			r.logger.Warnf("failed to open browser %v", err)
		}
	}

	return nil
}

// recordHistory persists a created playlist to the local database, best effort.
func (r *Runner) recordHistory(username, prompt string, created *models.CreatedPlaylist) {
	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		r.logger.Warn("skipping history record, database unavailable", "error", err)
		return
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		r.logger.Warn("skipping history record, migrations failed", "error", err)
		return
	}

	repo := repositories.NewHistoryRepository(db)
	entry := models.NewHistoryEntry(username, prompt, created.URL, created.Count)
	if err := repo.Create(entry); err != nil {
		r.logger.Warn("failed to record history entry", "error", err)
		return
	}

	r.logger.Info("history entry recorded", "id", entry.ID())
}
