package menu

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"
)

// Fetcher retrieves the upstream menu page for one source
type Fetcher interface {
	Fetch(ctx context.Context, src Source, date string) (*goquery.Document, error)
}

// Aggregator fans out menu fetches for all configured sources and joins the
// results into a fixed-cardinality batch
type Aggregator struct {
	fetcher Fetcher
	sources []Source
}

// NewAggregator creates an aggregator over the ordered source list
func NewAggregator(fetcher Fetcher, sources []Source) *Aggregator {
	return &Aggregator{fetcher: fetcher, sources: sources}
}

// Sources returns the configured source list in order
func (a *Aggregator) Sources() []Source {
	return a.sources
}

// Aggregate fetches every source concurrently and waits for all of them.
// The result always holds exactly one entry per configured source, in the
// configured order. A failed source is substituted with LookupFailed for
// each meal and never aborts its siblings.
func (a *Aggregator) Aggregate(ctx context.Context, date string) []SourceMenus {
	results := make([]SourceMenus, len(a.sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(len(a.sources))

	for i, src := range a.sources {
		g.Go(func() error {
			doc, err := a.fetcher.Fetch(ctx, src, date)
			if err != nil {
				lgr.Printf("[WARN] menu fetch failed for %s: %v", src.Name, err)
				results[i] = SourceMenus{Source: src, Meals: failedMeals()}
				return nil // sentinel substitution keeps the batch alive
			}

			meals := make(map[MealSlot]string, len(Slots()))
			for _, slot := range Slots() {
				meals[slot] = ExtractMeal(doc, slot)
			}
			results[i] = SourceMenus{Source: src, Meals: meals}
			return nil
		})
	}

	_ = g.Wait() // goroutines never return an error

	return results
}

func failedMeals() map[MealSlot]string {
	meals := make(map[MealSlot]string, len(Slots()))
	for _, slot := range Slots() {
		meals[slot] = LookupFailed
	}
	return meals
}
