package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/vibelist/internal/models"
)

var (
	_ list.Item = genreItem{}
	_ list.Item = artistItem{}
)

// genreItem wraps a catalog genre to implement [list.Item].
type genreItem struct {
	name     string
	hero     models.GenreHero
	hasHero  bool
	selected bool
}

func (i genreItem) FilterValue() string { return i.name }

func (i genreItem) Title() string {
	if i.selected {
		return styles.selected.Render("✓ " + i.name)
	}
	return i.name
}

func (i genreItem) Description() string {
	if !i.hasHero {
		return "no representative artist"
	}
	return fmt.Sprintf("hero: %s", i.hero.Name)
}

// artistItem wraps [models.Artist] to implement [list.Item].
type artistItem struct {
	artist models.Artist
}

func (i artistItem) FilterValue() string { return i.artist.Name }
func (i artistItem) Title() string       { return i.artist.Name }
func (i artistItem) Description() string {
	if i.artist.ImageURL == "" {
		return i.artist.ID
	}
	return fmt.Sprintf("%s • %s", i.artist.ID, i.artist.ImageURL)
}
