// Package heroservice is the tour's data-access layer. Every call records
// one line in the message log and, on failure, returns a safe fallback
// alongside the error so views can keep rendering.
package heroservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/heroes/internal/tour/messages"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
)

const logPrefix = "HeroService: "

// API is the subset of *heroesdk.SDKClient the service needs.
type API interface {
	ListHeroes(ctx context.Context) ([]heroesdk.Hero, error)
	GetHero(ctx context.Context, id int) (*heroesdk.Hero, error)
	SearchHeroes(ctx context.Context, term string) ([]heroesdk.Hero, error)
	CreateHero(ctx context.Context, req heroesdk.CreateHeroRequest) (*heroesdk.Hero, error)
	UpdateHero(ctx context.Context, hero heroesdk.Hero) error
	DeleteHero(ctx context.Context, id int) (*heroesdk.Hero, error)
}

type Service struct {
	api API
	log *messages.Log
}

func New(api API, log *messages.Log) *Service {
	return &Service{api: api, log: log}
}

// GetHeroes falls back to an empty slice.
func (s *Service) GetHeroes(ctx context.Context) ([]heroesdk.Hero, error) {
	heroes, err := s.api.ListHeroes(ctx)
	if err != nil {
		s.fail(ctx, "getHeroes", err)
		return []heroesdk.Hero{}, err
	}

	s.record("fetched heroes")
	return nonNil(heroes), nil
}

// GetHero falls back to nil, which is also what a 404 yields.
func (s *Service) GetHero(ctx context.Context, id int) (*heroesdk.Hero, error) {
	hero, err := s.api.GetHero(ctx, id)
	if err != nil {
		s.fail(ctx, fmt.Sprintf("getHero id=%d", id), err)
		return nil, err
	}

	s.record(fmt.Sprintf("fetched hero id=%d", id))
	return hero, nil
}

// AddHero sends name as-is; the server assigns the id.
func (s *Service) AddHero(ctx context.Context, name string) (*heroesdk.Hero, error) {
	hero, err := s.api.CreateHero(ctx, heroesdk.CreateHeroRequest{Name: name})
	if err != nil {
		s.fail(ctx, "addHero", err)
		return nil, err
	}

	s.record(fmt.Sprintf("added hero w/ id=%d", hero.ID))
	return hero, nil
}

func (s *Service) UpdateHero(ctx context.Context, hero heroesdk.Hero) error {
	if err := s.api.UpdateHero(ctx, hero); err != nil {
		s.fail(ctx, "updateHero", err)
		return err
	}

	s.record(fmt.Sprintf("updated hero id=%d", hero.ID))
	return nil
}

// DeleteHero removes the hero with id and returns what the server removed.
func (s *Service) DeleteHero(ctx context.Context, id int) (*heroesdk.Hero, error) {
	hero, err := s.api.DeleteHero(ctx, id)
	if err != nil {
		s.fail(ctx, "deleteHero", err)
		return nil, err
	}

	s.record(fmt.Sprintf("deleted hero id=%d", id))
	return hero, nil
}

// DeleteHeroRecord is DeleteHero keyed by the record's id.
func (s *Service) DeleteHeroRecord(ctx context.Context, hero heroesdk.Hero) (*heroesdk.Hero, error) {
	return s.DeleteHero(ctx, hero.ID)
}

// SearchHeroes returns an empty slice without a request or a log line when
// term is blank.
func (s *Service) SearchHeroes(ctx context.Context, term string) ([]heroesdk.Hero, error) {
	if strings.TrimSpace(term) == "" {
		return []heroesdk.Hero{}, nil
	}

	heroes, err := s.api.SearchHeroes(ctx, term)
	if err != nil {
		s.fail(ctx, "searchHeroes", err)
		return []heroesdk.Hero{}, err
	}

	if len(heroes) > 0 {
		s.record(fmt.Sprintf(`found heroes matching "%s"`, term))
	} else {
		s.record(fmt.Sprintf(`no heroes matching "%s"`, term))
	}
	return nonNil(heroes), nil
}

func (s *Service) record(message string) {
	s.log.Add(logPrefix + message)
}

// fail records err unless the caller abandoned the request.
func (s *Service) fail(ctx context.Context, operation string, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		slogx.FromContext(ctx).Debug("hero request abandoned", slog.String("operation", operation))
		return
	}

	slogx.FromContext(ctx).Warn("hero request failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	s.record(fmt.Sprintf("%s failed: %v", operation, err))
}

func nonNil(heroes []heroesdk.Hero) []heroesdk.Hero {
	if heroes == nil {
		return []heroesdk.Hero{}
	}
	return heroes
}
