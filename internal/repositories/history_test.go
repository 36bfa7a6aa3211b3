package repositories

import (
	"database/sql"
	"testing"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/shared"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)

	first, err := NextSequence(db, "history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NextSequence(db, "history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != 1 || second != 2 {
		t.Errorf("expected 1 then 2, got %d then %d", first, second)
	}
}

func TestHistoryRepository(t *testing.T) {
	t.Run("Create assigns id and sequence", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		entry := models.NewHistoryEntry("dana", "rainy midnight drive", "https://open.spotify.com/playlist/p1", 15)
		if err := repo.Create(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if entry.ID() == "" {
			t.Error("expected generated ID")
		}
		if entry.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", entry.Sequence())
		}
	})

	t.Run("Create rejects invalid entries", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		entry := models.NewHistoryEntry("", "prompt", "url", 10)
		if err := repo.Create(entry); err == nil {
			t.Error("expected validation error for missing username")
		}
	})

	t.Run("Get round-trips a created entry", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		entry := models.NewHistoryEntry("dana", "sunset rooftop", "https://open.spotify.com/playlist/p2", 20)
		if err := repo.Create(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := repo.Get(entry.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Prompt() != "sunset rooftop" || got.TrackCount() != 20 || got.Username() != "dana" {
			t.Errorf("unexpected entry %+v", got)
		}
	})

	t.Run("Get fails for unknown id", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		if _, err := repo.Get("nope"); err == nil {
			t.Error("expected error for unknown id")
		}
	})

	t.Run("Update modifies fields", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		entry := models.NewHistoryEntry("dana", "original", "url", 10)
		if err := repo.Create(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entry.SetTrackCount(25)
		if err := repo.Update(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := repo.Get(entry.ID())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TrackCount() != 25 {
			t.Errorf("expected 25 tracks, got %d", got.TrackCount())
		}
	})

	t.Run("Delete soft-deletes", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		entry := models.NewHistoryEntry("dana", "gone", "url", 5)
		if err := repo.Create(entry); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := repo.Delete(entry.ID()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Get(entry.ID()); err == nil {
			t.Error("expected soft-deleted entry to be hidden")
		}
		if err := repo.Delete(entry.ID()); err == nil {
			t.Error("expected second delete to fail")
		}
	})

	t.Run("List filters by username newest first", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		for _, prompt := range []string{"one", "two", "three"} {
			if err := repo.Create(models.NewHistoryEntry("dana", prompt, "url", 10)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if err := repo.Create(models.NewHistoryEntry("sam", "other", "url", 10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := repo.List(map[string]any{"username": "dana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		if entries[0].Prompt() != "three" || entries[2].Prompt() != "one" {
			t.Errorf("expected newest first, got %q .. %q", entries[0].Prompt(), entries[2].Prompt())
		}
	})

	t.Run("List honors the limit", func(t *testing.T) {
		repo := NewHistoryRepository(setupTestDB(t))

		for _, prompt := range []string{"one", "two", "three"} {
			if err := repo.Create(models.NewHistoryEntry("dana", prompt, "url", 10)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		entries, err := repo.List(map[string]any{"limit": 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected 2 entries, got %d", len(entries))
		}
	})
}
