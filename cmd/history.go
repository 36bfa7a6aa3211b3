package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vibelist/internal/repositories"
	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/urfave/cli/v3"
)

// History lists previously created playlists from the local database.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	criteria := map[string]any{"limit": limit}
	if username := cmd.String("username"); username != "" {
		criteria["username"] = username
	} else if r.config.Backend.Username != "" {
		criteria["username"] = r.config.Backend.Username
	}

	repo := repositories.NewHistoryRepository(db)
	entries, err := repo.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if useJSON {
		rows := make([]map[string]any, len(entries))
		for i, entry := range entries {
			rows[i] = map[string]any{
				"id":           entry.ID(),
				"username":     entry.Username(),
				"prompt":       entry.Prompt(),
				"playlist_url": entry.PlaylistURL(),
				"track_count":  entry.TrackCount(),
				"created_at":   entry.CreatedAt(),
			}
		}
		return r.writeJSON(rows, pretty)
	}

	if len(entries) == 0 {
		r.writePlain("No playlists recorded yet.\n")
		return nil
	}

	r.writePlain("Found %d playlists:\n\n", len(entries))
	for i, entry := range entries {
		r.writePlain("%d. %s\n", i+1, entry.Prompt())
		r.writePlain("   Created: %s\n", entry.CreatedAt().Format("2006-01-02 15:04"))
		r.writePlain("   Tracks: %d\n", entry.TrackCount())
		if entry.PlaylistURL() != "" {
			r.writePlain("   URL: %s\n", entry.PlaylistURL())
		}
		r.writePlain("\n")
	}

	return nil
}
