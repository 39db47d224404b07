package api

import (
	"context"
	"fmt"
)

// GetSitesPrices fetches the current price of every fuel at every site
// in a region.
func (c *Client) GetSitesPrices(ctx context.Context, region Region) ([]APISitePrice, error) {
	var resp SitePricesResponse
	if err := c.get(ctx, "/Price/GetSitesPrices", regionQuery(region), &resp); err != nil {
		return nil, fmt.Errorf("get sites prices: %w", err)
	}

	return resp.SitePrices, nil
}
