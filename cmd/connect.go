package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/vibelist/internal/server"
	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/urfave/cli/v3"
)

// Connect runs the Spotify connect flow.
//
// The backend owns the OAuth exchange; this command asks it for the
// authorization URL, opens a browser, and waits for the backend to redirect
// the user to a local callback with a connection marker.
func (r *Runner) Connect(ctx context.Context, cmd *cli.Command) error {
	username, err := r.username(cmd)
	if err != nil {
		return err
	}

	authURL, err := r.svc.LoginURL(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get authorization URL: %w", err)
	}

	connectHandler := server.NewConnectHandler(username)
	router := server.NewBasicRouter()
	router.Handler(connectHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting connect callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser to connect Spotify account %q...\n", username)
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for connection (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.ConnectResult

	select {
	case result = <-connectHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return fmt.Errorf("%w: connection timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return fmt.Errorf("connection failed: %w", result.Error())
	}

	r.writePlainln("✓ Spotify account %q connected", result.Username)
	r.writePlain("You can now use: vibelist tui\n")

	return nil
}

// Status checks backend health and the Spotify connection state for an account.
func (r *Runner) Status(ctx context.Context, cmd *cli.Command) error {
	username, err := r.username(cmd)
	if err != nil {
		return err
	}

	r.logger.Infof("checking connection status for %v", username)

	connected, err := r.svc.Connected(ctx, username)
	if err != nil {
		return fmt.Errorf("%w: backend unreachable: %v", shared.ErrServiceUnavailable, err)
	}

	r.writePlain("✓ Backend is healthy\n")
	if connected {
		r.writePlain("Spotify: ✓ %q is connected\n", username)
	} else {
		r.writePlain("Spotify: ✗ %q is not connected\n", username)
	}

	return nil
}
