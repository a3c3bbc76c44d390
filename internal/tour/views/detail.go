package views

import (
	"context"
	"strconv"
	"sync"

	"github.com/aussiebroadwan/heroes/internal/tour/router"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
)

// DetailView edits a single hero.
type DetailView struct {
	svc HeroService
	loc Location

	mu   sync.Mutex
	hero *heroesdk.Hero
	gen  int // bumped by Init so a stale fetch cannot overwrite a newer one

	wg sync.WaitGroup
}

func NewDetailView(svc HeroService, loc Location) *DetailView {
	return &DetailView{svc: svc, loc: loc}
}

// Init loads the hero named by the id parameter. Until the fetch lands, and
// for good if it finds nothing, Hero returns nil.
func (v *DetailView) Init(ctx context.Context, params router.Params) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.hero = nil
	v.mu.Unlock()

	id, err := strconv.Atoi(params["id"])
	if err != nil {
		return
	}

	v.wg.Go(func() {
		hero, _ := v.svc.GetHero(ctx, id)

		v.mu.Lock()
		defer v.mu.Unlock()
		if gen == v.gen {
			v.hero = hero
		}
	})
}

// Hero returns a copy of the bound hero, or nil.
func (v *DetailView) Hero() *heroesdk.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.hero == nil {
		return nil
	}
	h := *v.hero
	return &h
}

// SetName edits the bound hero locally. It reports false when no hero is bound.
func (v *DetailView) SetName(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.hero == nil {
		return false
	}
	v.hero.Name = name
	return true
}

// Save pushes the bound hero to the server and then navigates back, whether
// or not the update succeeded.
func (v *DetailView) Save(ctx context.Context) {
	hero := v.Hero()

	v.wg.Go(func() {
		if hero != nil {
			_ = v.svc.UpdateHero(ctx, *hero)
		}
		v.loc.Back(ctx)
	})
}

// GoBack navigates back without saving.
func (v *DetailView) GoBack(ctx context.Context) {
	v.loc.Back(ctx)
}

func (v *DetailView) Wait() { v.wg.Wait() }
