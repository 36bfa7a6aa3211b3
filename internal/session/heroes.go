package session

import (
	"context"
	"sync"

	"github.com/desertthunder/vibelist/internal/models"
	"github.com/desertthunder/vibelist/internal/services"
	"golang.org/x/time/rate"
)

// HeroBatchSize bounds how many genre keys travel in one hero request,
// keeping URLs short and responses small.
const HeroBatchSize = 12

// HeroFetchOpts contains configuration for the hero aggregation fetch.
type HeroFetchOpts struct {
	BatchSize  int     // Keys per request (default: HeroBatchSize)
	NumWorkers int     // Concurrent batch requests (default: 4)
	RateLimit  float64 // Requests per second (default: 5)
}

// FetchHeroes retrieves representative artists for every genre in the catalog
// by splitting the key list into bounded batches and merging the partial maps.
//
// Batches run concurrently behind a rate limiter. A failed batch is skipped
// rather than failing the aggregation; its keys simply stay absent, which the
// caller tolerates as missing imagery. Because batches are disjoint the merge
// is order-independent (last-write-wins if the backend ever disagrees).
func FetchHeroes(ctx context.Context, svc services.Service, username string, genres []string, opts HeroFetchOpts) map[string]models.GenreHero {
	if opts.BatchSize <= 0 {
		opts.BatchSize = HeroBatchSize
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 5.0
	}

	merged := make(map[string]models.GenreHero)
	batches := chunkKeys(genres, opts.BatchSize)
	if len(batches) == 0 {
		return merged
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan []string, len(batches))

	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				if err := limiter.Wait(ctx); err != nil {
					return
				}

				partial, err := svc.GenreHeroes(ctx, username, batch)
				if err != nil {
					continue
				}

				mu.Lock()
				for genre, hero := range partial {
					merged[genre] = hero
				}
				mu.Unlock()
			}
		}()
	}

	for _, batch := range batches {
		jobs <- batch
	}
	close(jobs)

	wg.Wait()
	return merged
}

// chunkKeys partitions keys into contiguous groups of at most size,
// preserving the original order.
func chunkKeys(keys []string, size int) [][]string {
	if size <= 0 || len(keys) == 0 {
		return nil
	}

	chunks := make([][]string, 0, (len(keys)+size-1)/size)
	for start := 0; start < len(keys); start += size {
		end := start + size
		if end > len(keys) {
			end = len(keys)
		}
		chunks = append(chunks, keys[start:end])
	}

	return chunks
}
