package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/heroes/internal/heroes/domain"
	"github.com/aussiebroadwan/heroes/internal/heroes/service"
	"github.com/aussiebroadwan/heroes/pkg/heroesdk"
	"github.com/aussiebroadwan/heroes/pkg/httpx"
	"github.com/aussiebroadwan/heroes/pkg/slogx"
	"github.com/samber/lo"
)

// HeroesHandler handles the /api/heroes endpoints.
type HeroesHandler struct {
	HeroService *service.HeroService
}

// HandleList handles GET /api/heroes
//
//	@Summary		List or search heroes
//	@Description	Returns every hero ordered by id. When the name query parameter is present only heroes
//	@Description	whose name contains it (case-insensitive) are returned; a blank name matches nothing.
//	@Tags			Heroes
//	@Produce		json
//	@Param			name	query		string					false	"Case-insensitive name fragment"
//	@Success		200		{array}		heroesdk.Hero			"Heroes ordered by id"
//	@Failure		429		{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Router			/api/heroes [get].
func (h *HeroesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var (
		heroes []domain.Hero
		err    error
	)
	if q := r.URL.Query(); q.Has("name") {
		heroes, err = h.HeroService.SearchHeroes(ctx, q.Get("name"))
	} else {
		heroes, err = h.HeroService.ListHeroes(ctx)
	}
	if err != nil {
		log.Error("failed to list heroes", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, heroesdk.ErrorCodeServerError, "Failed to list heroes")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toHeroResponses(heroes))
}

// HandleGet handles GET /api/heroes/{id}
//
//	@Summary		Get hero
//	@Tags			Heroes
//	@Produce		json
//	@Param			id	path		int						true	"Hero ID"
//	@Success		200	{object}	heroesdk.Hero			"id, name"
//	@Failure		400	{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Router			/api/heroes/{id} [get].
func (h *HeroesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := heroIDFromPath(w, r)
	if !ok {
		return
	}

	ctx := slogx.With(r.Context(), "hero_id", id)
	log := slogx.FromContext(ctx)

	hero, err := h.HeroService.GetHero(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrHeroNotFound) {
			writeHeroNotFound(w)
			return
		}
		log.Error("failed to get hero", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, heroesdk.ErrorCodeServerError, "Failed to get hero")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toHeroResponse(hero))
}

// HandleCreate handles POST /api/heroes
//
//	@Summary		Create hero
//	@Description	Stores a new hero. The server assigns the id (one more than the current maximum).
//	@Tags			Heroes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		heroesdk.CreateHeroRequest	true	"Hero without an id"
//	@Success		201		{object}	heroesdk.Hero				"Created hero with its id"
//	@Failure		400		{object}	heroesdk.ErrorResponse		"error, error_description"
//	@Failure		415		{object}	heroesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	heroesdk.ErrorResponse		"error, error_description"
//	@Router			/api/heroes [post].
func (h *HeroesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req heroesdk.CreateHeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, heroesdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	hero, err := h.HeroService.CreateHero(ctx, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHero) {
			httpx.WriteError(w, http.StatusBadRequest, heroesdk.ErrorCodeInvalidRequest,
				"Hero name is required and must be at most 128 characters")
			return
		}
		log.Error("failed to create hero", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, heroesdk.ErrorCodeServerError, "Failed to create hero")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toHeroResponse(hero))
}

// HandleUpdate handles PUT /api/heroes
//
//	@Summary		Update hero
//	@Description	Replaces the stored hero that has the body's id.
//	@Tags			Heroes
//	@Accept			json
//	@Produce		json
//	@Param			request	body	heroesdk.Hero	true	"Full hero"
//	@Success		204		"Hero updated"
//	@Failure		400		{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		415		{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Router			/api/heroes [put].
func (h *HeroesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req heroesdk.Hero
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, heroesdk.ErrorCodeInvalidRequest, "Invalid JSON in request body")
		return
	}

	err := h.HeroService.UpdateHero(ctx, domain.Hero{ID: req.ID, Name: req.Name})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidHero):
			httpx.WriteError(w, http.StatusBadRequest, heroesdk.ErrorCodeInvalidRequest,
				"Hero id and name are required")
		case errors.Is(err, service.ErrHeroNotFound):
			writeHeroNotFound(w)
		default:
			log.Error("failed to update hero", "error", err, "hero_id", req.ID)
			httpx.WriteError(w, http.StatusInternalServerError, heroesdk.ErrorCodeServerError, "Failed to update hero")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /api/heroes/{id}
//
//	@Summary		Delete hero
//	@Description	Removes the hero and returns the removed record. Ids are never reused while a higher id exists.
//	@Tags			Heroes
//	@Produce		json
//	@Param			id	path		int						true	"Hero ID"
//	@Success		200	{object}	heroesdk.Hero			"Deleted hero"
//	@Failure		400	{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	heroesdk.ErrorResponse	"error, error_description"
//	@Router			/api/heroes/{id} [delete].
func (h *HeroesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := heroIDFromPath(w, r)
	if !ok {
		return
	}

	hero, err := h.HeroService.DeleteHero(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrHeroNotFound) {
			writeHeroNotFound(w)
			return
		}
		log.Error("failed to delete hero", "error", err, "hero_id", id)
		httpx.WriteError(w, http.StatusInternalServerError, heroesdk.ErrorCodeServerError, "Failed to delete hero")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toHeroResponse(hero))
}

// heroIDFromPath parses the {id} wildcard, writing a 400 when it is not a
// positive integer.
func heroIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, heroesdk.ErrorCodeInvalidRequest,
			"Hero id must be a positive integer")
		return 0, false
	}
	return id, true
}

func writeHeroNotFound(w http.ResponseWriter) {
	httpx.WriteError(w, http.StatusNotFound, heroesdk.ErrorCodeHeroNotFound, "Hero not found")
}

func toHeroResponse(h domain.Hero) heroesdk.Hero {
	return heroesdk.Hero{ID: h.ID, Name: h.Name}
}

func toHeroResponses(heroes []domain.Hero) []heroesdk.Hero {
	return lo.Map(heroes, func(h domain.Hero, _ int) heroesdk.Hero {
		return toHeroResponse(h)
	})
}
