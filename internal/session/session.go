package session

import (
	"context"
	"sync"
	"time"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/services"
)

const (
	// DefaultSearchLimit caps artist search results per query.
	DefaultSearchLimit = 8

	// DefaultPlaylistLimit is the track count requested on create.
	DefaultPlaylistLimit = 15

	// DefaultEnergy is the initial energy target.
	DefaultEnergy = 0.5
)

// Opts configures a new [Engine].
type Opts struct {
	QuietPeriod time.Duration // Search debounce window (default: DefaultQuietPeriod)
	SearchLimit int           // Max artist results per search (default: DefaultSearchLimit)
	Limit       int           // Playlist size on create (default: DefaultPlaylistLimit)
	Energy      float64       // Initial energy target (default: DefaultEnergy)
	Public      bool          // Create public playlists
	Heroes      HeroFetchOpts // Hero aggregation tuning
}

// Engine owns the interactive state of one vibelist session.
//
// All mutation goes through its methods; async completions (debounced
// searches, hero batches) arrive on the channel returned by Events.
// Selections survive catalog reloads and identity changes; search state and
// imagery do not.
type Engine struct {
	mu  sync.Mutex
	ctx context.Context
	svc services.Service

	username   string
	catalogGen uint64 // bumped on identity change so stale loads are discarded
	searchSeq  uint64 // highest issued search; only that search may apply

	catalog []string
	heroes  map[string]models.GenreHero
	genres  *GenreSelection
	artists *ArtistSelection
	results []models.Artist
	query   string

	prompt string
	energy *float64

	previewing bool
	creating   bool

	limit       int
	public      bool
	searchLimit int
	heroOpts    HeroFetchOpts

	debouncer *Debouncer
	events    chan Event
}

// NewEngine creates an engine for the given backend service and identity.
func NewEngine(ctx context.Context, svc services.Service, username string, opts Opts) *Engine {
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = DefaultSearchLimit
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultPlaylistLimit
	}
	if opts.Energy <= 0 || opts.Energy > 1 {
		opts.Energy = DefaultEnergy
	}

	energy := opts.Energy
	e := &Engine{
		ctx:         ctx,
		svc:         svc,
		username:    username,
		heroes:      make(map[string]models.GenreHero),
		genres:      NewGenreSelection(),
		artists:     NewArtistSelection(),
		energy:      &energy,
		limit:       opts.Limit,
		public:      opts.Public,
		searchLimit: opts.SearchLimit,
		heroOpts:    opts.Heroes,
		events:      make(chan Event, 50),
	}

	e.debouncer = NewDebouncer(opts.QuietPeriod, e.performSearch, e.clearResults)
	return e
}

// Close cancels any pending debounced search. The event channel stays open
// so in-flight completions can still drain.
func (e *Engine) Close() {
	e.debouncer.Stop()
}

// Events returns the channel async completions are reported on.
func (e *Engine) Events() <-chan Event {
	return e.events
}

// emit sends an event without blocking; a full channel drops the event.
func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// LoadCatalog fetches the genre catalog for the current identity, then runs
// the hero aggregation over it. Transport failures degrade to an empty
// catalog or missing imagery; no error reaches the caller.
//
// The hero fetch only starts after the catalog fetch settles, so partitioning
// always sees a quiescent key set.
func (e *Engine) LoadCatalog(ctx context.Context) {
	e.mu.Lock()
	gen := e.catalogGen
	username := e.username
	opts := e.heroOpts
	e.mu.Unlock()

	genres, err := e.svc.ListGenres(ctx, username)
	if err != nil {
		genres = nil
	}

	e.mu.Lock()
	if gen != e.catalogGen {
		e.mu.Unlock()
		return
	}
	e.catalog = genres
	e.heroes = make(map[string]models.GenreHero)
	e.mu.Unlock()
	e.emit(Event{Kind: CatalogLoaded, Err: err})

	if len(genres) == 0 {
		e.emit(Event{Kind: HeroesLoaded})
		return
	}

	heroes := FetchHeroes(ctx, e.svc, username, genres, opts)

	e.mu.Lock()
	if gen != e.catalogGen {
		e.mu.Unlock()
		return
	}
	e.heroes = heroes
	e.mu.Unlock()
	e.emit(Event{Kind: HeroesLoaded})
}

// SetUsername switches the session identity. Catalog, imagery, and search
// state are invalidated; selections and steering parameters persist.
// Returns true when the identity actually changed and a reload is needed.
func (e *Engine) SetUsername(username string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if username == e.username {
		return false
	}

	e.username = username
	e.catalogGen++
	e.searchSeq++
	e.catalog = nil
	e.heroes = make(map[string]models.GenreHero)
	e.results = nil
	e.query = ""
	return true
}

// ScheduleSearch records the query text and arms the debounce timer.
func (e *Engine) ScheduleSearch(query string) {
	e.mu.Lock()
	e.query = query
	e.mu.Unlock()

	e.debouncer.Schedule(query)
}

// performSearch is the debouncer's dispatch target. The issued sequence
// number is compared again on completion; a superseded search discards its
// results instead of applying them.
func (e *Engine) performSearch(intent string) {
	e.mu.Lock()
	e.searchSeq++
	seq := e.searchSeq
	username := e.username
	limit := e.searchLimit
	e.mu.Unlock()

	artists, err := e.svc.SearchArtists(e.ctx, username, intent, limit)

	e.mu.Lock()
	if seq != e.searchSeq {
		e.mu.Unlock()
		return
	}
	if err != nil {
		artists = nil
	}
	e.results = artists
	e.mu.Unlock()
	e.emit(Event{Kind: SearchCompleted, Err: err})
}

// clearResults is the debouncer's short-circuit target. Bumping the sequence
// also invalidates any search still in flight.
func (e *Engine) clearResults() {
	e.mu.Lock()
	e.searchSeq++
	e.results = nil
	e.mu.Unlock()
	e.emit(Event{Kind: SearchCleared})
}

// ToggleGenre flips genre membership and reports the new state.
func (e *Engine) ToggleGenre(genre string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.genres.Toggle(genre)
}

// ClearGenres empties the genre selection.
func (e *Engine) ClearGenres() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.genres.Clear()
}

// GenreSelected reports whether the genre is currently selected.
func (e *Engine) GenreSelected(genre string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.genres.Has(genre)
}

// AddArtist selects an artist from the search results. Duplicates are
// ignored. A successful add also clears the pending search (results, query,
// and any in-flight response), returning the UI to a ready state.
func (e *Engine) AddArtist(artist models.Artist) bool {
	e.mu.Lock()
	added := e.artists.Add(artist)
	if added {
		e.searchSeq++
		e.results = nil
		e.query = ""
	}
	e.mu.Unlock()

	if added {
		e.debouncer.Stop()
		e.emit(Event{Kind: SearchCleared})
	}
	return added
}

// RemoveArtistAt drops the selected artist at index.
func (e *Engine) RemoveArtistAt(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.artists.RemoveAt(index)
}

// SetPrompt replaces the free-text vibe prompt.
func (e *Engine) SetPrompt(prompt string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.prompt = prompt
}

// SetEnergy sets the energy target, clamped to [0, 1].
func (e *Engine) SetEnergy(energy float64) {
	if energy < 0 {
		energy = 0
	}
	if energy > 1 {
		energy = 1
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.energy = &energy
}

// Snapshot accessors. Each returns a copy so callers can render without
// holding the engine lock.

func (e *Engine) Username() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.username
}

func (e *Engine) Catalog() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.catalog))
	copy(out, e.catalog)
	return out
}

func (e *Engine) Hero(genre string) (models.GenreHero, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	hero, ok := e.heroes[genre]
	return hero, ok
}

func (e *Engine) Heroes() map[string]models.GenreHero {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]models.GenreHero, len(e.heroes))
	for genre, hero := range e.heroes {
		out[genre] = hero
	}
	return out
}

func (e *Engine) SearchResults() []models.Artist {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Artist, len(e.results))
	copy(out, e.results)
	return out
}

func (e *Engine) Query() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query
}

func (e *Engine) SelectedGenres() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.genres.Values()
}

func (e *Engine) SelectedArtists() []models.Artist {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.artists.Artists()
}

func (e *Engine) Prompt() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prompt
}

func (e *Engine) Energy() *float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.energy == nil {
		return nil
	}
	energy := *e.energy
	return &energy
}

func (e *Engine) Limit() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.limit
}

func (e *Engine) Previewing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.previewing
}

func (e *Engine) Creating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.creating
}
