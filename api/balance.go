package api

import (
	"context"
)

// GetBalance returns the balance of assetID held by address, formatted with
// the given number of fractional digits
func (c *Client) GetBalance(ctx context.Context, address, assetID, network string, decimals int32) (string, error) {
	owner, err := c.sdk.ParseAddress(address)
	if err != nil {
		return "", err
	}

	provider, _, err := c.getProvider(ctx, network)
	if err != nil {
		return "", err
	}

	balance, err := provider.GetBalance(ctx, owner, assetID)
	if err != nil {
		return "", err
	}

	return scaleDown(balance, decimals).StringFixed(decimals), nil
}
