package service

import (
	"context"
	"errors"
	"net/url"

	"bioskopi-cli/model"
)

// ListFilms returns every film currently offered by the backend.
func (c *Client) ListFilms(ctx context.Context) ([]model.Film, error) {
	var films []model.Film
	if err := c.getData(ctx, "film.php", nil, &films); err != nil {
		return nil, err
	}
	return films, nil
}

// GetFilm fetches a single film by id.
func (c *Client) GetFilm(ctx context.Context, filmID string) (model.Film, error) {
	if filmID == "" {
		return model.Film{}, errors.New("film id is required")
	}
	query := url.Values{"film_id": {filmID}}

	var film model.Film
	if err := c.getData(ctx, "film.php", query, &film); err != nil {
		return model.Film{}, err
	}
	if film.Id == "" {
		return model.Film{}, errors.New("film not found")
	}
	return film, nil
}
