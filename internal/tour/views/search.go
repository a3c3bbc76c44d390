package views

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
)

// DefaultSearchDebounce is how long the search box waits for typing to stop.
const DefaultSearchDebounce = 300 * time.Millisecond

// SearchView is the hero search box. Terms are debounced, a term equal to
// the last one searched is dropped, and a new search cancels the request
// still in flight for the previous one.
type SearchView struct {
	svc      HeroService
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	pending    string
	pendingCtx context.Context
	last       string
	searched   bool
	cancel     context.CancelFunc
	seq        int
	results    []heroesdk.Hero

	wg sync.WaitGroup
}

// NewSearchView uses DefaultSearchDebounce when debounce is not positive.
func NewSearchView(svc HeroService, debounce time.Duration) *SearchView {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &SearchView{svc: svc, debounce: debounce}
}

// Search feeds a keystroke's worth of term into the pipeline.
func (v *SearchView) Search(ctx context.Context, term string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pending, v.pendingCtx = term, ctx
	if v.timer != nil && v.timer.Stop() {
		// The stopped timer never runs fire, so release its slot here.
		v.wg.Done()
	}
	v.wg.Add(1)
	v.timer = time.AfterFunc(v.debounce, v.fire)
}

func (v *SearchView) fire() {
	defer v.wg.Done()

	v.mu.Lock()
	term, parent := v.pending, v.pendingCtx
	if v.searched && term == v.last {
		v.mu.Unlock()
		return
	}
	v.last, v.searched = term, true

	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	v.cancel = cancel
	v.seq++
	seq := v.seq
	v.wg.Add(1)
	v.mu.Unlock()

	go func() {
		defer v.wg.Done()
		defer cancel()

		heroes, _ := v.svc.SearchHeroes(ctx, term)
		if ctx.Err() != nil {
			return
		}

		v.mu.Lock()
		defer v.mu.Unlock()
		if seq == v.seq {
			v.results = heroes
		}
	}()
}

// Results holds the answer to the latest search that completed.
func (v *SearchView) Results() []heroesdk.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.results)
}

// Wait blocks until the pending debounce and any in-flight search finish.
func (v *SearchView) Wait() { v.wg.Wait() }
