package session

import (
	"testing"
	"time"
)

func TestDebouncer(t *testing.T) {
	t.Run("burst collapses to final intent", func(t *testing.T) {
		dispatched := make(chan string, 10)
		d := NewDebouncer(20*time.Millisecond, func(s string) { dispatched <- s }, func() {})

		d.Schedule("ja")
		d.Schedule("jaz")
		d.Schedule("jazz")

		select {
		case got := <-dispatched:
			if got != "jazz" {
				t.Errorf("expected final intent 'jazz', got %q", got)
			}
		case <-time.After(time.Second):
			t.Fatal("expected a dispatch")
		}

		select {
		case got := <-dispatched:
			t.Errorf("expected a single dispatch, got extra %q", got)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("spaced intents each dispatch", func(t *testing.T) {
		dispatched := make(chan string, 10)
		d := NewDebouncer(10*time.Millisecond, func(s string) { dispatched <- s }, func() {})

		d.Schedule("jazz")
		select {
		case got := <-dispatched:
			if got != "jazz" {
				t.Errorf("expected 'jazz', got %q", got)
			}
		case <-time.After(time.Second):
			t.Fatal("expected first dispatch")
		}

		d.Schedule("rock")
		select {
		case got := <-dispatched:
			if got != "rock" {
				t.Errorf("expected 'rock', got %q", got)
			}
		case <-time.After(time.Second):
			t.Fatal("expected second dispatch")
		}
	})

	t.Run("short intent clears instead of dispatching", func(t *testing.T) {
		dispatched := make(chan string, 10)
		cleared := 0
		d := NewDebouncer(10*time.Millisecond, func(s string) { dispatched <- s }, func() { cleared++ })

		d.Schedule("")
		d.Schedule(" a ")

		if cleared != 2 {
			t.Errorf("expected 2 clears, got %d", cleared)
		}

		select {
		case got := <-dispatched:
			t.Errorf("expected no dispatch, got %q", got)
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("short intent cancels a pending dispatch", func(t *testing.T) {
		dispatched := make(chan string, 10)
		cleared := make(chan struct{}, 10)
		d := NewDebouncer(50*time.Millisecond, func(s string) { dispatched <- s }, func() { cleared <- struct{}{} })

		d.Schedule("jazz")
		d.Schedule("j")

		select {
		case <-cleared:
		case <-time.After(time.Second):
			t.Fatal("expected clear")
		}

		select {
		case got := <-dispatched:
			t.Errorf("expected pending dispatch cancelled, got %q", got)
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("intent is trimmed before dispatch", func(t *testing.T) {
		dispatched := make(chan string, 10)
		d := NewDebouncer(10*time.Millisecond, func(s string) { dispatched <- s }, func() {})

		d.Schedule("  lo-fi beats  ")

		select {
		case got := <-dispatched:
			if got != "lo-fi beats" {
				t.Errorf("expected trimmed intent, got %q", got)
			}
		case <-time.After(time.Second):
			t.Fatal("expected a dispatch")
		}
	})

	t.Run("Stop cancels pending dispatch", func(t *testing.T) {
		dispatched := make(chan string, 10)
		d := NewDebouncer(50*time.Millisecond, func(s string) { dispatched <- s }, func() {})

		d.Schedule("jazz")
		d.Stop()

		select {
		case got := <-dispatched:
			t.Errorf("expected no dispatch after Stop, got %q", got)
		case <-time.After(200 * time.Millisecond):
		}
	})
}
