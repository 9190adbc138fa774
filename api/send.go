package api

import (
	"context"
	"time"

	"github.com/chinmay1088/fuelkit/chains/fuel"
	"go.uber.org/zap"
)

// DefaultGasLimit caps every transfer
const DefaultGasLimit = 1_000_000

// SendTransaction transfers Amount of TokenAddress to To and waits for the
// transaction to finalize. Failures are logged once and returned as is.
func (c *Client) SendTransaction(ctx context.Context, params SendTransactionParams) (*SendTransactionResult, error) {
	result, err := c.sendTransaction(ctx, params)
	if err != nil {
		c.log().Error("send transaction error",
			zap.Error(err),
			zap.String("network", params.Network),
			zap.String("to", params.To),
		)
		return nil, err
	}
	return result, nil
}

func (c *Client) sendTransaction(ctx context.Context, params SendTransactionParams) (*SendTransactionResult, error) {
	provider, cfg, err := c.getProvider(ctx, params.Network)
	if err != nil {
		return nil, err
	}

	wallet, err := c.sdk.WalletFromPrivateKey(params.PrivateKey, provider)
	if err != nil {
		return nil, err
	}

	rawAmount := scaleUp(params.Amount, params.Decimals)

	to, err := c.sdk.ParseAddress(params.To)
	if err != nil {
		return nil, err
	}

	resp, err := wallet.Transfer(ctx, to, rawAmount, params.TokenAddress, fuel.TxParams{
		GasLimit: DefaultGasLimit,
	})
	if err != nil {
		return nil, err
	}

	txResult, err := resp.WaitForResult(ctx)
	if err != nil {
		return nil, err
	}

	receipt := SendTransactionReceipt{
		Amount:                params.Amount,
		Date:                  time.Now().UTC(),
		From:                  wallet.Address().String(),
		GasCostCryptoCurrency: FeeCurrency,
		Network:               params.Network,
		To:                    params.To,
		TransactionHash:       resp.ID(),
		TransactionLink:       cfg.TransactionLink(resp.ID()),
		TransactionReceipt:    txResult,
	}
	if txResult != nil {
		receipt.GasCostInCrypto = scaleDown(txResult.Fee.Big(), feeDecimals).InexactFloat64()
	}

	return &SendTransactionResult{
		TransactionData: resp,
		Receipt:         receipt,
	}, nil
}
