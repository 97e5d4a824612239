package service

import (
	"context"
	"errors"
	"net/url"

	"bioskopi-cli/model"
)

// ListMenuByCafe returns the food and drink items served at a café.
func (c *Client) ListMenuByCafe(ctx context.Context, cafeID string) ([]model.MenuItem, error) {
	if cafeID == "" {
		return nil, errors.New("cafe id is required")
	}
	query := url.Values{"cafe_id": {cafeID}}

	var items []model.MenuItem
	if err := c.getData(ctx, "makanan.php", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}
