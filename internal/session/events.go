package session

// EventKind enumerates the asynchronous completions the engine reports.
type EventKind int

const (
	CatalogLoaded  EventKind = iota // genre catalog replaced (Err set on silent degrade)
	HeroesLoaded                    // hero aggregation finished merging
	SearchCompleted                 // a dispatched search applied its results
	SearchCleared                   // results cleared by a short-circuit or selection
)

func (k EventKind) String() string {
	switch k {
	case CatalogLoaded:
		return "catalog_loaded"
	case HeroesLoaded:
		return "heroes_loaded"
	case SearchCompleted:
		return "search_completed"
	case SearchCleared:
		return "search_cleared"
	default:
		return ""
	}
}

// Event represents a state change completed outside the caller's stack frame.
//
// Err records the transport failure behind a silent degrade; it is for
// logging, never for user-facing error copy.
type Event struct {
	Kind EventKind
	Err  error
}
