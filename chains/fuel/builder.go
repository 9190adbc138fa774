package fuel

import (
	"context"
	"errors"
	"math/big"
)

var ErrNoTransferBuilder = errors.New("no transfer builder configured")

// TransferRequest describes a single coin transfer to encode
type TransferRequest struct {
	ChainID  uint64
	From     Address
	To       Address
	Amount   *big.Int
	AssetID  string
	GasLimit uint64
}

// UnsignedTransaction is an encoded transfer awaiting its owner's witness
type UnsignedTransaction interface {
	// ID is the digest the owner signs
	ID() [32]byte
	// Encode returns the canonical bytes with the witnesses attached
	Encode(witnesses [][]byte) ([]byte, error)
}

// TransferBuilder selects inputs and encodes a transfer transaction.
// Wallet only signs and submits what the builder produces.
type TransferBuilder interface {
	BuildTransfer(ctx context.Context, req TransferRequest) (UnsignedTransaction, error)
}
