// Package views holds the tour's screens. Remote calls run in the
// background; each view's Wait blocks until they settle.
package views

import (
	"context"

	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
)

// HeroService is implemented by *heroservice.Service. On failure every
// method returns its fallback alongside the error.
type HeroService interface {
	GetHeroes(ctx context.Context) ([]heroesdk.Hero, error)
	GetHero(ctx context.Context, id int) (*heroesdk.Hero, error)
	AddHero(ctx context.Context, name string) (*heroesdk.Hero, error)
	UpdateHero(ctx context.Context, hero heroesdk.Hero) error
	DeleteHeroRecord(ctx context.Context, hero heroesdk.Hero) (*heroesdk.Hero, error)
	SearchHeroes(ctx context.Context, term string) ([]heroesdk.Hero, error)
}

// Location is implemented by *router.Router.
type Location interface {
	Back(ctx context.Context) bool
}

func ptrs(heroes []heroesdk.Hero) []*heroesdk.Hero {
	out := make([]*heroesdk.Hero, len(heroes))
	for i := range heroes {
		h := heroes[i]
		out[i] = &h
	}
	return out
}
