package api

import (
	"context"
	"time"

	"github.com/chinmay1088/fuelkit/chains/fuel"
)

// fee amounts in a status are quoted with 9 decimals
const feeDecimals = 9

// GetTransaction returns the transaction and a normalized receipt, or nil
// when the network does not know the id
func (c *Client) GetTransaction(ctx context.Context, txID, network string) (*GetTransactionResult, error) {
	provider, cfg, err := c.getProvider(ctx, network)
	if err != nil {
		return nil, err
	}

	tx, err := provider.GetTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}

	withReceipts, err := provider.GetTransactionWithReceipts(ctx, txID)
	if err != nil {
		return nil, err
	}
	if withReceipts == nil {
		return nil, nil
	}

	receipt := TransactionReceipt{
		Date:                  time.Now().UTC(),
		GasCostCryptoCurrency: FeeCurrency,
		IsExecuted:            true,
		Network:               network,
		TransactionHash:       txID,
		TransactionLink:       cfg.TransactionLink(txID),
	}

	if status := withReceipts.Status; status != nil {
		receipt.IsSuccessful = status.Type == fuel.StatusSuccess
		receipt.IsFailed = status.Type == fuel.StatusFailure

		receipt.GasLimit = saturateUint64(status.TotalGas.Big())
		receipt.GasCostInCrypto = scaleDown(status.TotalFee.Big(), feeDecimals).InexactFloat64()
	}

	return &GetTransactionResult{
		TransactionData: tx,
		Receipt:         receipt,
	}, nil
}
