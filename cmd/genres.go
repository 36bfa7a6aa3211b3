package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/vibelist/internal/session"
	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Genres lists the genre catalog, optionally resolving hero artists per genre.
func (r *Runner) Genres(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	withHeroes := cmd.Bool("heroes")

	username, err := r.username(cmd)
	if err != nil {
		return err
	}

	r.logger.Infof("listing genres for %v", username)

	genres, err := r.svc.ListGenres(ctx, username)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !withHeroes {
		if useJSON {
			return r.writeJSON(genres, pretty)
		}
		r.writePlain("Found %d genres:\n\n", len(genres))
		for i, genre := range genres {
			r.writePlain("%d. %s\n", i+1, genre)
		}
		return nil
	}

	r.logger.Infof("fetching hero artists for %v genres", len(genres))

	heroes := session.FetchHeroes(ctx, r.svc, username, genres, session.HeroFetchOpts{})

	if useJSON {
		return r.writeJSON(heroes, pretty)
	}

	r.writePlain("Found %d genres (%d with heroes):\n\n", len(genres), len(heroes))
	for i, genre := range genres {
		r.writePlain("%d. %s\n", i+1, genre)
		if hero, ok := heroes[genre]; ok {
			r.writePlain("   Hero: %s\n", hero.Name)
		}
	}

	return nil
}
