package models

import (
	"fmt"
	"time"
)

// HistoryEntry records a successful playlist creation for local recall.
//
// Engine state (selections, search results) is deliberately ephemeral; only
// the outcome of a create is persisted so `vibelist history` can list past
// generations.
type HistoryEntry struct {
	id          string
	sequence    int
	username    string
	prompt      string
	playlistURL string
	trackCount  int
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
}

var _ Model = (*HistoryEntry)(nil)

// NewHistoryEntry creates an unsaved history entry for the given create outcome.
func NewHistoryEntry(username, prompt, playlistURL string, trackCount int) *HistoryEntry {
	now := time.Now()
	return &HistoryEntry{
		username:    username,
		prompt:      prompt,
		playlistURL: playlistURL,
		trackCount:  trackCount,
		createdAt:   now,
		updatedAt:   now,
	}
}

func (h *HistoryEntry) ID() string           { return h.id }
func (h *HistoryEntry) Sequence() int        { return h.sequence }
func (h *HistoryEntry) Username() string     { return h.username }
func (h *HistoryEntry) Prompt() string       { return h.prompt }
func (h *HistoryEntry) PlaylistURL() string  { return h.playlistURL }
func (h *HistoryEntry) TrackCount() int      { return h.trackCount }
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }
func (h *HistoryEntry) UpdatedAt() time.Time { return h.updatedAt }
func (h *HistoryEntry) DeletedAt() *time.Time {
	return h.deletedAt
}

func (h *HistoryEntry) SetID(id string)             { h.id = id }
func (h *HistoryEntry) SetSequence(seq int)         { h.sequence = seq }
func (h *HistoryEntry) SetCreatedAt(t time.Time)    { h.createdAt = t }
func (h *HistoryEntry) SetUpdatedAt(t time.Time)    { h.updatedAt = t }
func (h *HistoryEntry) SetDeletedAt(t *time.Time)   { h.deletedAt = t }
func (h *HistoryEntry) SetPlaylistURL(url string)   { h.playlistURL = url }
func (h *HistoryEntry) SetTrackCount(count int)     { h.trackCount = count }
func (h *HistoryEntry) SetUsername(username string) { h.username = username }
func (h *HistoryEntry) SetPrompt(prompt string)     { h.prompt = prompt }

// Validate checks that the entry can be persisted.
func (h *HistoryEntry) Validate() error {
	if h.id == "" {
		return fmt.Errorf("history entry missing id")
	}
	if h.username == "" {
		return fmt.Errorf("history entry missing username")
	}
	if h.playlistURL == "" && h.prompt == "" {
		return fmt.Errorf("history entry needs a prompt or a playlist URL")
	}
	if h.trackCount < 0 {
		return fmt.Errorf("history entry track count cannot be negative")
	}
	return nil
}
