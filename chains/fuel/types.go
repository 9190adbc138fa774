package fuel

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Quantity holds a U32/U64/U128 scalar. The node sends these as decimal
// strings; bare JSON numbers are accepted too.
type Quantity struct {
	v *big.Int
}

func NewQuantity(v *big.Int) Quantity {
	if v == nil {
		return Quantity{}
	}
	return Quantity{v: new(big.Int).Set(v)}
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		q.v = nil
		return nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid quantity %q", s)
	}
	q.v = v
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.v == nil {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(q.v.String())), nil
}

// IsSet reports whether the node returned a value
func (q Quantity) IsSet() bool {
	return q.v != nil
}

// Big returns a copy of the value, zero when unset
func (q Quantity) Big() *big.Int {
	if q.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(q.v)
}

func (q Quantity) Uint64() (uint64, error) {
	v := q.Big()
	if !v.IsUint64() {
		return 0, fmt.Errorf("quantity %s does not fit in uint64", v)
	}
	return v.Uint64(), nil
}

func (q Quantity) String() string {
	return q.Big().String()
}

// StatusType is the GraphQL type name of a transaction status
type StatusType string

const (
	StatusSubmitted   StatusType = "SubmittedStatus"
	StatusSuccess     StatusType = "SuccessStatus"
	StatusFailure     StatusType = "FailureStatus"
	StatusSqueezedOut StatusType = "SqueezedOutStatus"
)

// IsFinal reports whether no further status change is expected
func (s StatusType) IsFinal() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusSqueezedOut:
		return true
	}
	return false
}

// Transaction is a transaction as known by the node. Status is only
// populated by GetTransactionWithReceipts.
type Transaction struct {
	ID         string             `json:"id"`
	RawPayload string             `json:"rawPayload"`
	Status     *TransactionStatus `json:"status,omitempty"`
}

type TransactionStatus struct {
	Type          StatusType `json:"type"`
	TransactionID string     `json:"transactionId,omitempty"`
	BlockHeight   Quantity   `json:"blockHeight"`
	Time          string     `json:"time,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	TotalGas      Quantity   `json:"totalGas"`
	TotalFee      Quantity   `json:"totalFee"`
	Receipts      []Receipt  `json:"receipts,omitempty"`
}

// Receipt is a subset of the receipt fields the node exposes
type Receipt struct {
	ReceiptType string   `json:"receiptType"`
	ID          string   `json:"id,omitempty"`
	To          string   `json:"to,omitempty"`
	ToAddress   string   `json:"toAddress,omitempty"`
	Amount      Quantity `json:"amount"`
	AssetID     string   `json:"assetId,omitempty"`
	GasUsed     Quantity `json:"gasUsed"`
	Result      Quantity `json:"result"`
}

type ChainInfo struct {
	Name                string              `json:"name"`
	LatestBlockHeight   Quantity            `json:"latestBlockHeight"`
	ConsensusParameters ConsensusParameters `json:"consensusParameters"`
}

type ConsensusParameters struct {
	ChainID       Quantity      `json:"chainId"`
	BaseAssetID   string        `json:"baseAssetId"`
	FeeParameters FeeParameters `json:"feeParams"`
	MaxGasPerTx   Quantity      `json:"maxGasPerTx"`
}

type FeeParameters struct {
	GasPerByte     Quantity `json:"gasPerByte"`
	GasPriceFactor Quantity `json:"gasPriceFactor"`
}

// TxParams are the caller supplied limits of a transfer
type TxParams struct {
	GasLimit uint64
}

// TransactionResult is the final outcome of a submitted transaction
type TransactionResult struct {
	ID          string     `json:"id"`
	Status      StatusType `json:"status"`
	BlockHeight Quantity   `json:"blockHeight"`
	Time        string     `json:"time,omitempty"`
	GasUsed     Quantity   `json:"gasUsed"`
	Fee         Quantity   `json:"fee"`
	Reason      string     `json:"reason,omitempty"`
	Receipts    []Receipt  `json:"receipts"`
}

func newTransactionResult(tx *Transaction) *TransactionResult {
	result := &TransactionResult{ID: tx.ID}
	if s := tx.Status; s != nil {
		result.Status = s.Type
		result.BlockHeight = s.BlockHeight
		result.Time = s.Time
		result.GasUsed = s.TotalGas
		result.Fee = s.TotalFee
		result.Reason = s.Reason
		result.Receipts = s.Receipts
	}
	return result
}
