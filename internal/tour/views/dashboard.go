package views

import (
	"context"
	"slices"
	"sync"

	"github.com/aussiebroadwan/heroes/internal/tour/router"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/samber/lo"
)

// DashboardView shows the second through fifth heroes of the roster.
type DashboardView struct {
	svc HeroService

	mu  sync.Mutex
	top []heroesdk.Hero

	wg sync.WaitGroup
}

func NewDashboardView(svc HeroService) *DashboardView {
	return &DashboardView{svc: svc}
}

func (v *DashboardView) Init(ctx context.Context, _ router.Params) {
	v.wg.Go(func() {
		heroes, _ := v.svc.GetHeroes(ctx)

		v.mu.Lock()
		v.top = lo.Slice(heroes, 1, 5)
		v.mu.Unlock()
	})
}

func (v *DashboardView) TopHeroes() []heroesdk.Hero {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.top)
}

func (v *DashboardView) Wait() { v.wg.Wait() }
