package heroesdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

const heroesPath = "/api/heroes"

// ListHeroes returns every hero ordered by id.
func (c *SDKClient) ListHeroes(ctx context.Context) ([]Hero, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, heroesPath, nil, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var heroes []Hero
	if err := decodeJSON(resp, &heroes, http.StatusOK); err != nil {
		return nil, err
	}

	return heroes, nil
}

// GetHero returns the hero with the given id. A missing hero is an
// *APIError for which IsNotFound reports true.
func (c *SDKClient) GetHero(ctx context.Context, id int) (*Hero, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, heroPath(id), nil, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var hero Hero
	if err := decodeJSON(resp, &hero, http.StatusOK); err != nil {
		return nil, err
	}

	return &hero, nil
}

// SearchHeroes returns the heroes whose name contains term, ignoring case.
func (c *SDKClient) SearchHeroes(ctx context.Context, term string) ([]Hero, error) {
	q := url.Values{"name": {term}}
	resp, err := c.doRequest(ctx, http.MethodGet, heroesPath+"/?"+q.Encode(), nil, jsonHeaders)
	if err != nil {
		return nil, err
	}

	var heroes []Hero
	if err := decodeJSON(resp, &heroes, http.StatusOK); err != nil {
		return nil, err
	}

	return heroes, nil
}

// CreateHero stores a new hero and returns it with its assigned id.
func (c *SDKClient) CreateHero(ctx context.Context, req CreateHeroRequest) (*Hero, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, heroesPath, req)
	if err != nil {
		return nil, err
	}

	var hero Hero
	if err := decodeJSON(resp, &hero, http.StatusCreated); err != nil {
		return nil, err
	}

	return &hero, nil
}

// UpdateHero replaces the stored hero with the same id.
func (c *SDKClient) UpdateHero(ctx context.Context, hero Hero) error {
	resp, err := c.doJSON(ctx, http.MethodPut, heroesPath, hero)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

// DeleteHero removes the hero and returns the removed record.
func (c *SDKClient) DeleteHero(ctx context.Context, id int) (*Hero, error) {
	resp, err := c.doJSON(ctx, http.MethodDelete, heroPath(id), nil)
	if err != nil {
		return nil, err
	}

	var hero Hero
	if err := decodeJSON(resp, &hero, http.StatusOK); err != nil {
		return nil, err
	}

	return &hero, nil
}

func heroPath(id int) string {
	return heroesPath + "/" + strconv.Itoa(id)
}
