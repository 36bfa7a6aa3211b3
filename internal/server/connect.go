package server

import (
	"fmt"
	"net/http"
	"sync"
)

// ConnectResult contains the outcome of a connect flow.
//
// The backend owns the OAuth dance; the client only learns the result from
// the redirect markers (?connected=<username> or ?spotify_error=<message>).
type ConnectResult struct {
	Username string
	err      error
}

func (c *ConnectResult) Error() error {
	return c.err
}

// ConnectHandler catches the backend's post-authorization redirect.
// Implements the Handler interface for registration with a Router.
type ConnectHandler struct {
	username    string
	resultChan  chan ConnectResult
	once        sync.Once
	callbackHit bool
	mu          sync.Mutex
}

// NewConnectHandler creates a handler expecting a redirect for the given username.
func NewConnectHandler(username string) *ConnectHandler {
	return &ConnectHandler{
		username:   username,
		resultChan: make(chan ConnectResult, 1),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *ConnectHandler) Routes() []string {
	return []string{"/"}
}

// ServeHTTP handles the redirect request.
//
// Reads the connected/spotify_error markers and sends the result through the
// result channel. Only the first hit is processed.
func (h *ConnectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.callbackHit {
		h.mu.Unlock()
		http.Error(w, "Callback already processed", http.StatusBadRequest)
		return
	}
	h.callbackHit = true
	h.mu.Unlock()

	if errMsg := r.URL.Query().Get("spotify_error"); errMsg != "" {
		h.Send(ConnectResult{err: fmt.Errorf("authorization failed: %s", errMsg)})
		http.Error(w, "Authorization failed", http.StatusBadRequest)
		return
	}

	connected := r.URL.Query().Get("connected")
	if connected == "" {
		h.Send(ConnectResult{err: fmt.Errorf("redirect missing connected marker")})
		http.Error(w, "Missing connected marker", http.StatusBadRequest)
		return
	}

	if h.username != "" && connected != h.username {
		h.Send(ConnectResult{err: fmt.Errorf("connected as %q, expected %q", connected, h.username)})
		http.Error(w, "Unexpected username", http.StatusBadRequest)
		return
	}

	h.Send(ConnectResult{Username: connected})

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Spotify Connected</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #1DB954; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Spotify Connected</h1>
        <p>You can close this window and return to the terminal.</p>
    </div>
</body>
</html>
`)
}

// Send sends the connect result through the channel (only once).
func (h *ConnectHandler) Send(result ConnectResult) {
	h.once.Do(func() {
		h.resultChan <- result
		close(h.resultChan)
	})
}

// Result returns the result channel for receiving connect flow completion.
//
// Channel will receive exactly one result and then be closed.
func (h *ConnectHandler) Result() <-chan ConnectResult {
	return h.resultChan
}
