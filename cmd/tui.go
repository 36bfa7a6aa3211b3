package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vibelist/internal/session"
	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/desertthunder/vibelist/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for vibe composition.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	username, err := r.username(cmd)
	if err != nil {
		return err
	}

	if connected, err := r.svc.Connected(ctx, username); err != nil {
		return fmt.Errorf("%w: backend unreachable: %v", shared.ErrServiceUnavailable, err)
	} else if !connected {
		return fmt.Errorf("%w: account %q", shared.ErrNotConnected, username)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/vibelist-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	engine := session.NewEngine(ctx, r.svc, username, session.Opts{
		Limit:  r.config.Defaults.Limit,
		Energy: r.config.Defaults.Energy,
		Public: r.config.Defaults.Public,
	})
	defer engine.Close()

	model := ui.NewModel(ctx, engine)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
