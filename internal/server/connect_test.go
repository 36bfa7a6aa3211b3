package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func receiveResult(t *testing.T, h *ConnectHandler) ConnectResult {
	t.Helper()

	select {
	case result := <-h.Result():
		return result
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for connect result")
		return ConnectResult{}
	}
}

func TestConnectHandler(t *testing.T) {
	t.Run("successful redirect", func(t *testing.T) {
		h := NewConnectHandler("dana")

		req := httptest.NewRequest(http.MethodGet, "/?connected=dana", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Spotify Connected") {
			t.Error("expected success page")
		}

		result := receiveResult(t, h)
		if result.Error() != nil {
			t.Errorf("unexpected error: %v", result.Error())
		}
		if result.Username != "dana" {
			t.Errorf("expected username dana, got %q", result.Username)
		}
	})

	t.Run("spotify_error marker", func(t *testing.T) {
		h := NewConnectHandler("dana")

		req := httptest.NewRequest(http.MethodGet, "/?spotify_error=access_denied", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}

		result := receiveResult(t, h)
		if result.Error() == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(result.Error().Error(), "access_denied") {
			t.Errorf("expected marker in error, got %v", result.Error())
		}
	})

	t.Run("missing connected marker", func(t *testing.T) {
		h := NewConnectHandler("dana")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if result := receiveResult(t, h); result.Error() == nil {
			t.Error("expected error for missing marker")
		}
	})

	t.Run("username mismatch", func(t *testing.T) {
		h := NewConnectHandler("dana")

		req := httptest.NewRequest(http.MethodGet, "/?connected=sam", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if result := receiveResult(t, h); result.Error() == nil {
			t.Error("expected error for unexpected username")
		}
	})

	t.Run("second callback is rejected", func(t *testing.T) {
		h := NewConnectHandler("dana")

		first := httptest.NewRequest(http.MethodGet, "/?connected=dana", nil)
		h.ServeHTTP(httptest.NewRecorder(), first)

		second := httptest.NewRequest(http.MethodGet, "/?connected=dana", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, second)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for replayed callback, got %d", rec.Code)
		}
	})

	t.Run("Routes registers the root path", func(t *testing.T) {
		h := NewConnectHandler("dana")

		routes := h.Routes()
		if len(routes) != 1 || routes[0] != "/" {
			t.Errorf("unexpected routes %v", routes)
		}
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handle enforces the method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong"))
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
			t.Errorf("expected pong, got %d %q", rec.Code, rec.Body.String())
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("middleware wraps in registration order", func(t *testing.T) {
		var order []string
		mw := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(mw("outer"), mw("inner"))
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		want := "outer,inner,handler"
		if got := strings.Join(order, ","); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Handler registers all routes", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(NewConnectHandler("dana"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?connected=dana", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}
