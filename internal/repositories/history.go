package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/shared"
)

// HistoryRepository implements [models.Repository] for [models.HistoryEntry] persistence.
//
// Handles history CRUD operations with soft delete support and username lookups.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a new [HistoryRepository] with the given database connection
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create inserts a new history entry into the database with generated ID and sequence
func (r *HistoryRepository) Create(entry *models.HistoryEntry) error {
	sequence, err := NextSequence(r.db, "history")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	entry.SetID(id)
	entry.SetSequence(sequence)

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO history (id, sequence, username, prompt, playlist_url, track_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		id,
		sequence,
		entry.Username(),
		entry.Prompt(),
		entry.PlaylistURL(),
		entry.TrackCount(),
		entry.CreatedAt(),
		entry.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

// Get retrieves a history entry by ID, excluding soft-deleted entries
func (r *HistoryRepository) Get(id string) (*models.HistoryEntry, error) {
	query := `
		SELECT id, sequence, username, prompt, playlist_url, track_count, created_at, updated_at, deleted_at
		FROM history
		WHERE id = ? AND deleted_at IS NULL
	`

	return r.scanOne(r.db.QueryRow(query, id))
}

// Update modifies an existing history entry in the database
func (r *HistoryRepository) Update(entry *models.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	entry.SetUpdatedAt(now)

	query := `
		UPDATE history
		SET prompt = ?, playlist_url = ?, track_count = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query,
		entry.Prompt(),
		entry.PlaylistURL(),
		entry.TrackCount(),
		now,
		entry.ID(),
	)
	if err != nil {
		return fmt.Errorf("failed to update history entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("history entry not found: %s", entry.ID())
	}

	return nil
}

// Delete soft-deletes a history entry by setting deleted_at
func (r *HistoryRepository) Delete(id string) error {
	query := `
		UPDATE history SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL
	`

	result, err := r.db.Exec(query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("history entry not found: %s", id)
	}

	return nil
}

// List retrieves history entries matching the given criteria, newest first.
//
// Supported criteria: "username" (string), "limit" (int).
func (r *HistoryRepository) List(criteria map[string]any) ([]*models.HistoryEntry, error) {
	query := `
		SELECT id, sequence, username, prompt, playlist_url, track_count, created_at, updated_at, deleted_at
		FROM history
		WHERE deleted_at IS NULL
	`
	args := []any{}

	if username, ok := criteria["username"].(string); ok && username != "" {
		query += " AND username = ?"
		args = append(args, username)
	}

	query += " ORDER BY sequence DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []*models.HistoryEntry
	for rows.Next() {
		entry, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *HistoryRepository) scanOne(row *sql.Row) (*models.HistoryEntry, error) {
	entry, err := r.scan(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("history entry not found")
	}
	return entry, err
}

func (r *HistoryRepository) scanRow(rows *sql.Rows) (*models.HistoryEntry, error) {
	return r.scan(rows)
}

func (r *HistoryRepository) scan(row rowScanner) (*models.HistoryEntry, error) {
	var (
		id          string
		sequence    int
		username    string
		prompt      string
		playlistURL string
		trackCount  int
		createdAt   time.Time
		updatedAt   time.Time
		deletedAt   *time.Time
	)

	if err := row.Scan(&id, &sequence, &username, &prompt, &playlistURL, &trackCount, &createdAt, &updatedAt, &deletedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan history entry: %w", err)
	}

	entry := models.NewHistoryEntry(username, prompt, playlistURL, trackCount)
	entry.SetID(id)
	entry.SetSequence(sequence)
	entry.SetCreatedAt(createdAt)
	entry.SetUpdatedAt(updatedAt)
	entry.SetDeletedAt(deletedAt)

	return entry, nil
}
