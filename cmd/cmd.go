// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func usernameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "username",
		Aliases: []string{"u"},
		Usage:   "Spotify account username (overrides config.toml)",
	}
}

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the local history database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// connectCommand starts the Spotify connect flow through the backend.
func connectCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "connect",
		Usage:  "Connect a Spotify account through the backend",
		Flags:  []cli.Flag{usernameFlag()},
		Action: r.Connect,
	}
}

// statusCommand reports backend and Spotify connection health.
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Check backend health and Spotify connection state",
		Flags:  []cli.Flag{usernameFlag()},
		Action: r.Status,
	}
}

// genresCommand lists the genre catalog for an account.
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "List saved-library genres, optionally with hero artists",
		Flags: []cli.Flag{
			usernameFlag(),
			&cli.BoolFlag{
				Name:  "heroes",
				Usage: "Fetch a representative artist per genre",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Genres,
	}
}

// searchCommand searches artists by name.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search artists by name",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			usernameFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of artists to return",
				Value: 8,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Search,
	}
}

// playlistCommand handles preview and creation of generated playlists.
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "playlist",
		Usage: "Preview or create a generated playlist",
		Commands: []*cli.Command{
			{
				Name:  "preview",
				Usage: "Show the search query the backend derives from a prompt",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "prompt",
						Aliases:  []string{"p"},
						Usage:    "Vibe description",
						Required: true,
					},
				},
				Action: r.PlaylistPreview,
			},
			{
				Name:  "create",
				Usage: "Create a playlist on the connected Spotify account",
				Flags: []cli.Flag{
					usernameFlag(),
					&cli.StringFlag{
						Name:    "prompt",
						Aliases: []string{"p"},
						Usage:   "Vibe description",
					},
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "Seed genre (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "artist",
						Usage: "Seed artist ID (repeatable)",
					},
					&cli.FloatFlag{
						Name:  "energy",
						Usage: "Energy target between 0 and 1",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of tracks",
					},
					&cli.BoolFlag{
						Name:  "public",
						Usage: "Make the playlist public",
					},
					&cli.BoolFlag{
						Name:  "open",
						Usage: "Open the created playlist in a browser",
					},
				},
				Action: r.PlaylistCreate,
			},
		},
	}
}

// historyCommand lists locally recorded playlist creations.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List previously created playlists",
		Flags: []cli.Flag{
			usernameFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to show",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.History,
	}
}

// tuiCommand returns the top-level TUI command for interactive composition.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive vibe composer",
		Flags:   []cli.Flag{usernameFlag()},
		Action:  r.TUI,
	}
}
