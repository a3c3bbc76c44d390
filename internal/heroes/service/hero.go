package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/store"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
	"github.com/go-playground/validator/v10"
)

var (
	ErrHeroNotFound = errors.New("hero not found")
	ErrInvalidHero  = errors.New("invalid hero")
)

var validate = validator.New()

type HeroService struct {
	Store store.Store
}

// ListHeroes returns every hero ordered by id.
func (s *HeroService) ListHeroes(ctx context.Context) ([]domain.Hero, error) {
	return s.Store.Heroes().ListHeroes(ctx)
}

// GetHero returns ErrHeroNotFound when the id is unknown.
func (s *HeroService) GetHero(ctx context.Context, id int) (domain.Hero, error) {
	h, err := s.Store.Heroes().GetHeroByID(ctx, id)
	if err != nil {
		return domain.Hero{}, mapStoreErr(err)
	}
	return h, nil
}

// SearchHeroes matches term against hero names. A blank term matches
// nothing and never reaches the store.
func (s *HeroService) SearchHeroes(ctx context.Context, term string) ([]domain.Hero, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Hero{}, nil
	}
	return s.Store.Heroes().SearchHeroesByName(ctx, term)
}

// CreateHero stores a new hero under a server-assigned id.
func (s *HeroService) CreateHero(ctx context.Context, name string) (domain.Hero, error) {
	l := slogx.FromContext(ctx)

	h := domain.Hero{Name: domain.NormalizeName(name)}
	if err := validateHero(h); err != nil {
		return domain.Hero{}, err
	}

	created, err := s.Store.Heroes().CreateHero(ctx, h.Name)
	if err != nil {
		l.Error("failed to create hero", "error", err)
		return domain.Hero{}, err
	}

	l.Info("hero created", "hero_id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateHero replaces the stored hero with h.
func (s *HeroService) UpdateHero(ctx context.Context, h domain.Hero) error {
	l := slogx.FromContext(ctx)

	h.Name = domain.NormalizeName(h.Name)
	if err := validateHero(h); err != nil {
		return err
	}
	if h.ID <= 0 {
		return fmt.Errorf("%w: id is required", ErrInvalidHero)
	}

	if err := s.Store.Heroes().UpdateHero(ctx, h); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("failed to update hero", "error", err, "hero_id", h.ID)
		}
		return mapStoreErr(err)
	}

	l.Info("hero updated", "hero_id", h.ID)
	return nil
}

// DeleteHero removes the hero and returns it.
func (s *HeroService) DeleteHero(ctx context.Context, id int) (domain.Hero, error) {
	l := slogx.FromContext(ctx)

	h, err := s.Store.Heroes().DeleteHero(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Error("failed to delete hero", "error", err, "hero_id", id)
		}
		return domain.Hero{}, mapStoreErr(err)
	}

	l.Info("hero deleted", "hero_id", id)
	return h, nil
}

func validateHero(h domain.Hero) error {
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHero, err)
	}
	return nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrHeroNotFound
	}
	return err
}
