package fuel

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrInvalidPrivateKey = errors.New("invalid private key")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Node is the chain access a Wallet needs to send transfers
type Node interface {
	GetChain(ctx context.Context) (*ChainInfo, error)
	GetTransactionWithReceipts(ctx context.Context, id string) (*Transaction, error)
	Submit(ctx context.Context, encoded []byte) (string, error)
}

// Wallet is a secp256k1 key bound to a node
type Wallet struct {
	key          *ecdsa.PrivateKey
	address      Address
	node         Node
	builder      TransferBuilder
	pollInterval time.Duration
}

type WalletOption func(*Wallet)

// WithBuilder sets the encoder used by Transfer
func WithBuilder(b TransferBuilder) WalletOption {
	return func(w *Wallet) {
		w.builder = b
	}
}

// WithPollInterval sets how often WaitForResult asks the node for a status
func WithPollInterval(d time.Duration) WalletOption {
	return func(w *Wallet) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// WalletFromPrivateKey parses a hex private key, with or without 0x
func WalletFromPrivateKey(privateKey string, node Node, opts ...WalletOption) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	w := &Wallet{
		key:          key,
		address:      FromPublicKey(&key.PublicKey),
		node:         node,
		pollInterval: time.Second,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Wallet) Address() Address {
	return w.address
}

// PublicKey returns the 64 byte uncompressed public key
func (w *Wallet) PublicKey() []byte {
	return crypto.FromECDSAPub(&w.key.PublicKey)[1:]
}

// Sign returns a 64 byte compact signature of digest. The recovery id is
// stored in the top bit of s.
func (w *Wallet) Sign(digest [32]byte) ([]byte, error) {
	sig, err := crypto.Sign(digest[:], w.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	compact := make([]byte, 64)
	copy(compact, sig[:64])
	compact[32] |= sig[64] << 7
	return compact, nil
}

// RecoverAddress returns the address that produced a compact signature
func RecoverAddress(digest [32]byte, compact []byte) (Address, error) {
	if len(compact) != 64 {
		return Address{}, fmt.Errorf("invalid signature length %d", len(compact))
	}

	sig := make([]byte, 65)
	copy(sig, compact)
	sig[64] = compact[32] >> 7
	sig[32] &= 0x7f

	pub, err := crypto.SigToPub(digest[:], sig)
	if err != nil {
		return Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return FromPublicKey(pub), nil
}

// Transfer builds, signs and submits a transfer of amount base units of
// assetID to the destination. An empty assetID selects the chain's base
// asset.
func (w *Wallet) Transfer(ctx context.Context, to Address, amount *big.Int, assetID string, params TxParams) (*TransactionResponse, error) {
	if amount == nil || amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidAmount)
	}
	if w.builder == nil {
		return nil, ErrNoTransferBuilder
	}

	chain, err := w.node.GetChain(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain info: %w", err)
	}
	chainID, err := chain.ConsensusParameters.ChainID.Uint64()
	if err != nil {
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	if assetID == "" {
		assetID = chain.ConsensusParameters.BaseAssetID
	}

	unsigned, err := w.builder.BuildTransfer(ctx, TransferRequest{
		ChainID:  chainID,
		From:     w.address,
		To:       to,
		Amount:   new(big.Int).Set(amount),
		AssetID:  assetID,
		GasLimit: params.GasLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build transfer: %w", err)
	}

	witness, err := w.Sign(unsigned.ID())
	if err != nil {
		return nil, err
	}

	encoded, err := unsigned.Encode([][]byte{witness})
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}

	id, err := w.node.Submit(ctx, encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}

	return &TransactionResponse{
		id:           id,
		node:         w.node,
		pollInterval: w.pollInterval,
	}, nil
}
