package api

// IsValidWalletAddress reports whether the SDK accepts address
func (c *Client) IsValidWalletAddress(address string) bool {
	_, err := c.sdk.ParseAddress(address)
	return err == nil
}
