package session

import (
	"sort"

	"github.com/desertthunder/vibelist/internal/models"
)

// GenreSelection is a unique, unordered set of genre names.
//
// Membership is presentational; the composer serializes whatever is selected,
// even genres toggled before the catalog finished loading.
type GenreSelection struct {
	members map[string]struct{}
}

// NewGenreSelection creates an empty genre selection.
func NewGenreSelection() *GenreSelection {
	return &GenreSelection{members: make(map[string]struct{})}
}

// Toggle flips membership for the given genre and reports whether it is
// selected afterwards. Double-toggle is a no-op pair.
func (s *GenreSelection) Toggle(genre string) bool {
	if _, ok := s.members[genre]; ok {
		delete(s.members, genre)
		return false
	}
	s.members[genre] = struct{}{}
	return true
}

// Has reports whether the genre is currently selected.
func (s *GenreSelection) Has(genre string) bool {
	_, ok := s.members[genre]
	return ok
}

// Clear empties the selection.
func (s *GenreSelection) Clear() {
	s.members = make(map[string]struct{})
}

// Len returns the number of selected genres.
func (s *GenreSelection) Len() int {
	return len(s.members)
}

// Values returns the selected genres sorted lexically, so serialization is
// deterministic.
func (s *GenreSelection) Values() []string {
	values := make([]string, 0, len(s.members))
	for genre := range s.members {
		values = append(values, genre)
	}
	sort.Strings(values)
	return values
}

// ArtistSelection is an ordered list of selected artists in insertion order.
//
// Each entry is a single [models.Artist] record, so the id/name/image triple
// for one selection can never fall out of alignment.
type ArtistSelection struct {
	artists []models.Artist
}

// NewArtistSelection creates an empty artist selection.
func NewArtistSelection() *ArtistSelection {
	return &ArtistSelection{}
}

// Add appends the artist unless its ID is already selected.
// Returns true when the artist was added.
func (s *ArtistSelection) Add(artist models.Artist) bool {
	for _, a := range s.artists {
		if a.ID == artist.ID {
			return false
		}
	}
	s.artists = append(s.artists, artist)
	return true
}

// RemoveAt removes the artist at index, preserving order.
// Returns false when index is out of range.
func (s *ArtistSelection) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.artists) {
		return false
	}
	s.artists = append(s.artists[:index], s.artists[index+1:]...)
	return true
}

// At returns the artist at index.
func (s *ArtistSelection) At(index int) (models.Artist, bool) {
	if index < 0 || index >= len(s.artists) {
		return models.Artist{}, false
	}
	return s.artists[index], true
}

// Len returns the number of selected artists.
func (s *ArtistSelection) Len() int {
	return len(s.artists)
}

// Clear empties the selection.
func (s *ArtistSelection) Clear() {
	s.artists = nil
}

// Artists returns a copy of the selection in insertion order.
func (s *ArtistSelection) Artists() []models.Artist {
	out := make([]models.Artist, len(s.artists))
	copy(out, s.artists)
	return out
}

// IDs projects the selection onto its artist IDs, in insertion order.
func (s *ArtistSelection) IDs() []string {
	ids := make([]string, len(s.artists))
	for i, a := range s.artists {
		ids[i] = a.ID
	}
	return ids
}

// Names projects the selection onto display names, in insertion order.
func (s *ArtistSelection) Names() []string {
	names := make([]string, len(s.artists))
	for i, a := range s.artists {
		names[i] = a.Name
	}
	return names
}
