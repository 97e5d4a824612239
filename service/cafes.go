package service

import (
	"context"
	"errors"
	"net/url"

	"bioskopi-cli/model"
)

// ListCafes returns all partner cafés.
func (c *Client) ListCafes(ctx context.Context) ([]model.Cafe, error) {
	var cafes []model.Cafe
	if err := c.getData(ctx, "cafe.php", nil, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

// GetCafe fetches a single café by id.
func (c *Client) GetCafe(ctx context.Context, cafeID string) (model.Cafe, error) {
	if cafeID == "" {
		return model.Cafe{}, errors.New("cafe id is required")
	}
	query := url.Values{"cafe_id": {cafeID}}

	var cafe model.Cafe
	if err := c.getData(ctx, "cafe.php", query, &cafe); err != nil {
		return model.Cafe{}, err
	}
	if cafe.Id == "" {
		return model.Cafe{}, errors.New("cafe not found")
	}
	return cafe, nil
}
