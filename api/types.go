package api

import (
	"time"

	"github.com/chinmay1088/fuelkit/chains/fuel"
)

// TransactionReceipt is the normalized view of a transaction looked up by id
type TransactionReceipt struct {
	Date                  time.Time `json:"date"`
	From                  string    `json:"from"`
	GasCostCryptoCurrency string    `json:"gasCostCryptoCurrency"`
	GasCostInCrypto       float64   `json:"gasCostInCrypto"`
	GasLimit              uint64    `json:"gasLimit"`
	IsPending             bool      `json:"isPending"`
	IsExecuted            bool      `json:"isExecuted"`
	IsSuccessful          bool      `json:"isSuccessful"`
	IsFailed              bool      `json:"isFailed"`
	IsInvalid             bool      `json:"isInvalid"`
	RejectReason          string    `json:"rejectReason"`
	Network               string    `json:"network"`
	Nonce                 uint64    `json:"nonce"`
	TransactionHash       string    `json:"transactionHash"`
	TransactionLink       string    `json:"transactionLink"`
}

// GetTransactionResult pairs the raw transaction with its receipt
type GetTransactionResult struct {
	TransactionData *fuel.Transaction  `json:"transactionData"`
	Receipt         TransactionReceipt `json:"receipt"`
}

// SendTransactionReceipt describes a finalized transfer
type SendTransactionReceipt struct {
	Amount                float64                 `json:"amount"`
	Date                  time.Time               `json:"date"`
	From                  string                  `json:"from"`
	GasCostCryptoCurrency string                  `json:"gasCostCryptoCurrency"`
	GasCostInCrypto       float64                 `json:"gasCostInCrypto"`
	Network               string                  `json:"network"`
	Nonce                 uint64                  `json:"nonce"`
	To                    string                  `json:"to"`
	TransactionHash       string                  `json:"transactionHash"`
	TransactionLink       string                  `json:"transactionLink"`
	TransactionReceipt    *fuel.TransactionResult `json:"transactionReceipt"`
	RejectReason          string                  `json:"rejectReason"`
}

type SendTransactionResult struct {
	TransactionData TransferResponse       `json:"transactionData"`
	Receipt         SendTransactionReceipt `json:"receipt"`
}

// SendTransactionParams describes a transfer. Amount is in whole units and
// is scaled by Decimals; an empty TokenAddress sends the base asset.
type SendTransactionParams struct {
	To           string  `json:"to"`
	Amount       float64 `json:"amount"`
	Network      string  `json:"network"`
	PrivateKey   string  `json:"-"`
	Decimals     int32   `json:"decimals"`
	TokenAddress string  `json:"tokenAddress"`
}
