package sqlite

import (
	"context"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/internal/heroes/store/drivers/sqlite/gen"
	"github.com/samber/lo"
)

type heroesRepo struct {
	q *gen.Queries
}

func (r *heroesRepo) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	rows, err := r.q.ListHeroes(ctx)
	if err != nil {
		return nil, err
	}
	return mapHeroes(rows), nil
}

func (r *heroesRepo) GetHeroByID(ctx context.Context, id int) (domain.Hero, error) {
	row, err := r.q.GetHeroByID(ctx, int64(id))
	if err != nil {
		return domain.Hero{}, mapNotFound(err)
	}
	return mapHero(row), nil
}

// SearchHeroesByName filters in Go: SQLite's lower() only folds ASCII.
func (r *heroesRepo) SearchHeroesByName(ctx context.Context, term string) ([]domain.Hero, error) {
	rows, err := r.q.ListHeroes(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(mapHeroes(rows), func(h domain.Hero, _ int) bool {
		return h.MatchesName(term)
	}), nil
}

func (r *heroesRepo) CreateHero(ctx context.Context, name string) (domain.Hero, error) {
	row, err := r.q.CreateHero(ctx, gen.CreateHeroParams{
		FirstID: domain.FirstHeroID,
		Name:    name,
	})
	if err != nil {
		return domain.Hero{}, err
	}
	return domain.Hero{ID: int(row.ID), Name: row.Name}, nil
}

func (r *heroesRepo) UpdateHero(ctx context.Context, h domain.Hero) error {
	n, err := r.q.UpdateHeroName(ctx, gen.UpdateHeroNameParams{
		Name: h.Name,
		ID:   int64(h.ID),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *heroesRepo) DeleteHero(ctx context.Context, id int) (domain.Hero, error) {
	row, err := r.q.DeleteHero(ctx, int64(id))
	if err != nil {
		return domain.Hero{}, mapNotFound(err)
	}
	return domain.Hero{ID: int(row.ID), Name: row.Name}, nil
}

// Seed is not atomic on its own; callers wanting all-or-nothing run it
// inside WithTx.
func (r *heroesRepo) Seed(ctx context.Context, heroes []domain.Hero) (int, error) {
	count, err := r.q.CountHeroes(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, h := range heroes {
		n, err := r.q.InsertHero(ctx, gen.InsertHeroParams{ID: int64(h.ID), Name: h.Name})
		if err != nil {
			return 0, err
		}
		inserted += int(n)
	}
	return inserted, nil
}

func (r *heroesRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountHeroes(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
