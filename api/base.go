package api

import (
	"context"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Client runs the Fuel operations against an SDK
type Client struct {
	sdk    SDK
	logger *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithSDK replaces the GraphQL backed SDK
func WithSDK(sdk SDK) Option {
	return func(c *Client) {
		c.sdk = sdk
	}
}

// WithLogger sets the logger for failed operations. Without it the
// global zap logger is used.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new API client. Without options it talks to the
// public Fuel GraphQL endpoints and logs through zap.L().
func NewClient(opts ...Option) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	if c.sdk == nil {
		c.sdk = NewFuelSDK()
	}
	return c
}

// log resolves zap.L() on every call so ReplaceGlobals after init applies
func (c *Client) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return zap.L()
}

// getProvider opens a fresh provider for the network on every call
func (c *Client) getProvider(ctx context.Context, network string) (Provider, NetworkConfig, error) {
	cfg := GetNetwork(network)
	provider, err := c.sdk.Connect(ctx, cfg.EndpointURL)
	if err != nil {
		return nil, cfg, err
	}
	return provider, cfg, nil
}

// scaleDown converts base units to whole units
func scaleDown(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -decimals)
}

// scaleUp converts whole units to base units, rounding to the nearest unit
func scaleUp(amount float64, decimals int32) *big.Int {
	return decimal.NewFromFloat(amount).Shift(decimals).Round(0).BigInt()
}

// saturateUint64 clamps v into the uint64 range
func saturateUint64(v *big.Int) uint64 {
	switch {
	case v.Sign() < 0:
		return 0
	case !v.IsUint64():
		return math.MaxUint64
	}
	return v.Uint64()
}

var defaultClient = NewClient()

// GetTransaction looks up a transaction with the default client
func GetTransaction(ctx context.Context, txID, network string) (*GetTransactionResult, error) {
	return defaultClient.GetTransaction(ctx, txID, network)
}

// GetBalance reads a balance with the default client
func GetBalance(ctx context.Context, address, assetID, network string, decimals int32) (string, error) {
	return defaultClient.GetBalance(ctx, address, assetID, network, decimals)
}

// GetFeeStats estimates fees with the default client
func GetFeeStats(ctx context.Context, network string) (FeeEstimate, error) {
	return defaultClient.GetFeeStats(ctx, network)
}

// SendTransaction sends a transfer with the default client
func SendTransaction(ctx context.Context, params SendTransactionParams) (*SendTransactionResult, error) {
	return defaultClient.SendTransaction(ctx, params)
}

// IsValidWalletAddress validates an address with the default client
func IsValidWalletAddress(address string) bool {
	return defaultClient.IsValidWalletAddress(address)
}
