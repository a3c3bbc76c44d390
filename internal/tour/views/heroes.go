package views

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/aussiebroadwan/heroes/internal/tour/router"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/samber/lo"
)

// HeroesView is the editable hero list. Entries are pointers so Delete can
// remove exactly the record it was handed. The list is kept in ascending id
// order, which is how the server lists heroes and how it assigns new ids.
type HeroesView struct {
	svc HeroService

	mu     sync.Mutex
	heroes []*heroesdk.Hero

	// While a fetch is in flight, local adds and deletes are remembered so
	// the fetched list does not undo them.
	gen     int
	loading bool
	added   []*heroesdk.Hero
	removed map[int]bool

	wg sync.WaitGroup
}

func NewHeroesView(svc HeroService) *HeroesView {
	return &HeroesView{svc: svc}
}

// Init replaces the list with a fresh fetch. Adds and deletes that complete
// before the fetch lands are applied on top of it. A later Init supersedes
// an earlier one still in flight.
func (v *HeroesView) Init(ctx context.Context, _ router.Params) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	v.added = nil
	v.removed = map[int]bool{}
	v.mu.Unlock()

	v.wg.Go(func() {
		heroes, _ := v.svc.GetHeroes(ctx)

		v.mu.Lock()
		defer v.mu.Unlock()
		if gen != v.gen {
			return
		}

		list := lo.Reject(ptrs(heroes), func(h *heroesdk.Hero, _ int) bool { return v.removed[h.ID] })
		for _, h := range v.added {
			if !slices.ContainsFunc(list, func(f *heroesdk.Hero) bool { return f.ID == h.ID }) {
				list = insertByID(list, h)
			}
		}
		v.heroes = list
		v.loading, v.added, v.removed = false, nil, nil
	})
}

// Add creates a hero and appends it once the server answers. Blank names are
// ignored without a request.
func (v *HeroesView) Add(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	v.wg.Go(func() {
		hero, _ := v.svc.AddHero(ctx, name)
		if hero == nil {
			return
		}

		v.mu.Lock()
		defer v.mu.Unlock()
		v.heroes = insertByID(v.heroes, hero)
		if v.loading {
			v.added = append(v.added, hero)
		}
	})
}

// Delete drops hero from the list immediately and then deletes it on the
// server. If the server refuses, hero goes back to its place in id order.
func (v *HeroesView) Delete(ctx context.Context, hero *heroesdk.Hero) {
	if hero == nil {
		return
	}

	v.mu.Lock()
	idx := slices.Index(v.heroes, hero)
	if idx >= 0 {
		v.heroes = slices.Delete(slices.Clone(v.heroes), idx, idx+1)
		if v.loading {
			v.removed[hero.ID] = true
		}
	}
	record := *hero
	v.mu.Unlock()

	v.wg.Go(func() {
		if _, err := v.svc.DeleteHeroRecord(ctx, record); err == nil || idx < 0 {
			return
		}
		v.restore(hero)
	})
}

func (v *HeroesView) restore(hero *heroesdk.Hero) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loading {
		delete(v.removed, hero.ID)
	}
	if slices.ContainsFunc(v.heroes, func(h *heroesdk.Hero) bool { return h.ID == hero.ID }) {
		return
	}
	v.heroes = insertByID(v.heroes, hero)
}

// insertByID inserts hero before the first entry with a larger id.
func insertByID(heroes []*heroesdk.Hero, hero *heroesdk.Hero) []*heroesdk.Hero {
	i, _ := slices.BinarySearchFunc(heroes, hero.ID, func(h *heroesdk.Hero, id int) int {
		return cmp.Compare(h.ID, id)
	})
	return slices.Insert(slices.Clone(heroes), i, hero)
}

// Heroes is a snapshot of the list. The pointers are the view's own and may
// be passed back to Delete.
func (v *HeroesView) Heroes() []*heroesdk.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.heroes)
}

// Find returns the listed hero with id, or nil.
func (v *HeroesView) Find(id int) *heroesdk.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()

	hero, _ := lo.Find(v.heroes, func(h *heroesdk.Hero) bool { return h.ID == id })
	return hero
}

func (v *HeroesView) Wait() { v.wg.Wait() }
