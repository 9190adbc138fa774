package api

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/chinmay1088/fuelkit/chains/fuel"
)

// SDK is the chain client the operations are built on
type SDK interface {
	Connect(ctx context.Context, url string) (Provider, error)
	ParseAddress(address string) (fuel.Address, error)
	WalletFromPrivateKey(privateKey string, provider Provider) (Wallet, error)
}

// Provider is a read handle on one network
type Provider interface {
	GetTransaction(ctx context.Context, id string) (*fuel.Transaction, error)
	GetTransactionWithReceipts(ctx context.Context, id string) (*fuel.Transaction, error)
	GetBalance(ctx context.Context, owner fuel.Address, assetID string) (*big.Int, error)
	GetChain(ctx context.Context) (*fuel.ChainInfo, error)
}

// Wallet signs and submits transfers
type Wallet interface {
	Address() fuel.Address
	Transfer(ctx context.Context, to fuel.Address, amount *big.Int, assetID string, params fuel.TxParams) (TransferResponse, error)
}

// TransferResponse is a submitted transfer awaiting finalization
type TransferResponse interface {
	ID() string
	WaitForResult(ctx context.Context) (*fuel.TransactionResult, error)
}

// FuelSDK implements SDK on top of the GraphQL client in chains/fuel
type FuelSDK struct {
	httpClient   *http.Client
	builder      fuel.TransferBuilder
	pollInterval time.Duration
}

// FuelSDKOption configures a FuelSDK
type FuelSDKOption func(*FuelSDK)

// WithHTTPClient sets the HTTP client every provider uses
func WithHTTPClient(c *http.Client) FuelSDKOption {
	return func(s *FuelSDK) {
		s.httpClient = c
	}
}

// WithTransferBuilder sets the transaction encoder wallets use for transfers
func WithTransferBuilder(b fuel.TransferBuilder) FuelSDKOption {
	return func(s *FuelSDK) {
		s.builder = b
	}
}

// WithPollInterval sets how often wallets poll a submitted transaction
func WithPollInterval(d time.Duration) FuelSDKOption {
	return func(s *FuelSDK) {
		s.pollInterval = d
	}
}

// NewFuelSDK creates an SDK for the public GraphQL endpoints
func NewFuelSDK(opts ...FuelSDKOption) *FuelSDK {
	s := &FuelSDK{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CanTransfer reports whether wallets from this SDK can encode transfers
func (s *FuelSDK) CanTransfer() bool {
	return s.builder != nil
}

// Connect returns a provider for url. No request is made until the first
// query.
func (s *FuelSDK) Connect(ctx context.Context, url string) (Provider, error) {
	var opts []fuel.Option
	if s.httpClient != nil {
		opts = append(opts, fuel.WithHTTPClient(s.httpClient))
	}
	return fuel.NewProvider(url, opts...), nil
}

// ParseAddress accepts b256 and legacy fuel1 addresses
func (s *FuelSDK) ParseAddress(address string) (fuel.Address, error) {
	return fuel.NewAddress(address)
}

// WalletFromPrivateKey binds a hex key to a provider returned by Connect
func (s *FuelSDK) WalletFromPrivateKey(privateKey string, provider Provider) (Wallet, error) {
	node, ok := provider.(fuel.Node)
	if !ok {
		return nil, fmt.Errorf("provider %T cannot submit transactions", provider)
	}

	opts := []fuel.WalletOption{fuel.WithPollInterval(s.pollInterval)}
	if s.builder != nil {
		opts = append(opts, fuel.WithBuilder(s.builder))
	}

	w, err := fuel.WalletFromPrivateKey(privateKey, node, opts...)
	if err != nil {
		return nil, err
	}
	return fuelWallet{w}, nil
}

// fuelWallet narrows fuel.Wallet.Transfer to the TransferResponse interface
type fuelWallet struct {
	*fuel.Wallet
}

func (w fuelWallet) Transfer(ctx context.Context, to fuel.Address, amount *big.Int, assetID string, params fuel.TxParams) (TransferResponse, error) {
	resp, err := w.Wallet.Transfer(ctx, to, amount, assetID, params)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
