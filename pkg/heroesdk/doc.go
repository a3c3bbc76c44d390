/*
Package heroesdk provides a client SDK for the heroes API.

# Overview

SDKClient wraps the JSON endpoints under /api/heroes together with the
service's health probes:

	client := heroesdk.NewSDKClient("http://localhost:8080")

	heroes, err := client.ListHeroes(ctx)
	hero, err := client.GetHero(ctx, 12)
	matches, err := client.SearchHeroes(ctx, "ma")

	created, err := client.CreateHero(ctx, heroesdk.CreateHeroRequest{Name: "Windstorm"})
	err = client.UpdateHero(ctx, heroesdk.Hero{ID: created.ID, Name: "Windstorm II"})
	removed, err := client.DeleteHero(ctx, created.ID)

# Errors

Every non-2xx response is returned as an *APIError carrying the HTTP status
and the server's error code:

	hero, err := client.GetHero(ctx, 999)
	if heroesdk.IsNotFound(err) {
		// no such hero
	}

	var apiErr *heroesdk.APIError
	if errors.As(err, &apiErr) {
		log.Printf("status=%d code=%s", apiErr.StatusCode, apiErr.Code)
	}

Transport failures (connection refused, context cancellation) are returned
wrapped and never as *APIError.
*/
package heroesdk
