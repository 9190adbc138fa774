package api

import (
	"context"
	"errors"
	"math/big"

	"github.com/chinmay1088/fuelkit/chains/fuel"
)

// fakeSDK records what the operations asked for and answers from fields
type fakeSDK struct {
	provider   *fakeProvider
	wallet     *fakeWallet
	connectErr error
	walletErr  error

	connected []string
}

func (s *fakeSDK) Connect(ctx context.Context, url string) (Provider, error) {
	s.connected = append(s.connected, url)
	if s.connectErr != nil {
		return nil, s.connectErr
	}
	return s.provider, nil
}

func (s *fakeSDK) ParseAddress(address string) (fuel.Address, error) {
	return fuel.NewAddress(address)
}

func (s *fakeSDK) WalletFromPrivateKey(privateKey string, provider Provider) (Wallet, error) {
	if s.walletErr != nil {
		return nil, s.walletErr
	}
	if privateKey != testKey {
		return nil, fuel.ErrInvalidPrivateKey
	}
	return s.wallet, nil
}

type fakeProvider struct {
	tx           *fuel.Transaction
	withReceipts *fuel.Transaction
	balance      *big.Int
	chain        *fuel.ChainInfo
	err          error

	balanceOwner fuel.Address
	balanceAsset string
}

func (p *fakeProvider) GetTransaction(ctx context.Context, id string) (*fuel.Transaction, error) {
	return p.tx, p.err
}

func (p *fakeProvider) GetTransactionWithReceipts(ctx context.Context, id string) (*fuel.Transaction, error) {
	return p.withReceipts, p.err
}

func (p *fakeProvider) GetBalance(ctx context.Context, owner fuel.Address, assetID string) (*big.Int, error) {
	p.balanceOwner = owner
	p.balanceAsset = assetID
	if p.err != nil {
		return nil, p.err
	}
	return p.balance, nil
}

func (p *fakeProvider) GetChain(ctx context.Context) (*fuel.ChainInfo, error) {
	return p.chain, p.err
}

type fakeWallet struct {
	address fuel.Address
	result  *fuel.TransactionResult
	waitErr error

	transfers []transferCall
}

type transferCall struct {
	to      fuel.Address
	amount  *big.Int
	assetID string
	params  fuel.TxParams
}

func (w *fakeWallet) Address() fuel.Address {
	return w.address
}

func (w *fakeWallet) Transfer(ctx context.Context, to fuel.Address, amount *big.Int, assetID string, params fuel.TxParams) (TransferResponse, error) {
	w.transfers = append(w.transfers, transferCall{to: to, amount: amount, assetID: assetID, params: params})
	if amount.Sign() <= 0 {
		return nil, fuel.ErrInvalidAmount
	}
	return &fakeResponse{id: testTxID, result: w.result, err: w.waitErr}, nil
}

type fakeResponse struct {
	id     string
	result *fuel.TransactionResult
	err    error
}

func (r *fakeResponse) ID() string {
	return r.id
}

func (r *fakeResponse) WaitForResult(ctx context.Context) (*fuel.TransactionResult, error) {
	return r.result, r.err
}

const (
	testKey     = "0x5f2b6b4e3d2c1a0f9e8d7c6b5a4938271605f4e3d2c1b0a9f8e7d6c5b4a39281"
	testTxID    = "0x2b3c4d5e6f708192a3b4c5d6e7f8091a2b1b4b8a2e9c5b2d3f4e6a7c8d9e0f1a"
	testAddress = "0x1b4b8a2e9c5b2d3f4e6a7c8d9e0f1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b"
	testSender  = "0x9a8b7c6d5e4f30211203f4e5d6c7b8a99a8b7c6d5e4f30211203f4e5d6c7b8a9"
)

var errNode = errors.New("node unavailable")

func quantity(v int64) fuel.Quantity {
	return fuel.NewQuantity(big.NewInt(v))
}

func mustAddress(s string) fuel.Address {
	a, err := fuel.NewAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}
