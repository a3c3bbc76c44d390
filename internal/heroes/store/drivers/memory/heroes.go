package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
)

type heroesRepo struct {
	lock rwLocker
	data func() map[int]domain.Hero
}

func (r *heroesRepo) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return sortedByID(slices.Collect(maps.Values(r.data()))), nil
}

func (r *heroesRepo) GetHeroByID(ctx context.Context, id int) (domain.Hero, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	h, ok := r.data()[id]
	if !ok {
		return domain.Hero{}, store.ErrNotFound
	}
	return h, nil
}

func (r *heroesRepo) SearchHeroesByName(ctx context.Context, term string) ([]domain.Hero, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	var out []domain.Hero
	for _, h := range r.data() {
		if h.MatchesName(term) {
			out = append(out, h)
		}
	}
	return sortedByID(out), nil
}

func (r *heroesRepo) CreateHero(ctx context.Context, name string) (domain.Hero, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	heroes := r.data()
	h := domain.Hero{ID: nextID(heroes), Name: name}
	heroes[h.ID] = h
	return h, nil
}

func (r *heroesRepo) UpdateHero(ctx context.Context, h domain.Hero) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	heroes := r.data()
	if _, ok := heroes[h.ID]; !ok {
		return store.ErrNotFound
	}
	heroes[h.ID] = h
	return nil
}

func (r *heroesRepo) DeleteHero(ctx context.Context, id int) (domain.Hero, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	heroes := r.data()
	h, ok := heroes[id]
	if !ok {
		return domain.Hero{}, store.ErrNotFound
	}
	delete(heroes, id)
	return h, nil
}

func (r *heroesRepo) Seed(ctx context.Context, seed []domain.Hero) (int, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	heroes := r.data()
	if len(heroes) > 0 {
		return 0, nil
	}
	inserted := 0
	for _, h := range seed {
		if _, dup := heroes[h.ID]; dup {
			continue
		}
		heroes[h.ID] = h
		inserted++
	}
	return inserted, nil
}

func (r *heroesRepo) IsEmpty(ctx context.Context) (bool, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	return len(r.data()) == 0, nil
}

func nextID(heroes map[int]domain.Hero) int {
	if len(heroes) == 0 {
		return domain.FirstHeroID
	}
	return slices.Max(slices.Collect(maps.Keys(heroes))) + 1
}

func sortedByID(heroes []domain.Hero) []domain.Hero {
	slices.SortFunc(heroes, func(a, b domain.Hero) int { return cmp.Compare(a.ID, b.ID) })
	if heroes == nil {
		return []domain.Hero{}
	}
	return heroes
}
