package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search finds artists by name through the backend.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	limit := cmd.Int("limit")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	username, err := r.username(cmd)
	if err != nil {
		return err
	}

	r.logger.Infof("searching artists for %q with limit %v", query, limit)

	artists, err := r.svc.SearchArtists(ctx, username, query, limit)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(artists, pretty)
	}

	r.writePlain("Found %d artists:\n\n", len(artists))
	for i, artist := range artists {
		r.writePlain("%d. %s\n", i+1, artist.Name)
		r.writePlain("   ID: %s\n", artist.ID)
	}

	return nil
}
