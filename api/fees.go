package api

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"
)

// reference transfer used for fee estimates
const (
	GasUsed     = 50_000
	TxSizeBytes = 300
)

// FeeCurrency is the symbol every fee is quoted in
const FeeCurrency = "ETH"

var (
	lowMultiplier      = decimal.NewFromInt(1)
	standardMultiplier = decimal.NewFromFloat(1.5)
	fastMultiplier     = decimal.NewFromInt(2)
	maxMultiplier      = decimal.NewFromInt(3)
)

// FeeEstimate is a tiered fee quote in whole units of the base asset
type FeeEstimate struct {
	Currency           string  `json:"feeCryptoCurrency"`
	BaseFee            float64 `json:"baseFee"`
	LowFeeCharged      float64 `json:"lowFeeCharged"`
	StandardFeeCharged float64 `json:"standardFeeCharged"`
	FastFeeCharged     float64 `json:"fastFeeCharged"`
	MaxFeeCharged      float64 `json:"maxFeeCharged"`
}

// EstimateFees prices the reference transfer from the chain's fee
// parameters
func EstimateFees(gasPerByte, gasPriceFactor uint64) FeeEstimate {
	gas := new(big.Int).Mul(big.NewInt(GasUsed), new(big.Int).SetUint64(gasPriceFactor))
	size := new(big.Int).Mul(big.NewInt(TxSizeBytes), new(big.Int).SetUint64(gasPerByte))
	base := decimal.NewFromBigInt(new(big.Int).Add(gas, size), 0)

	return FeeEstimate{
		Currency:           FeeCurrency,
		BaseFee:            fromWei(base),
		LowFeeCharged:      fromWei(base.Mul(lowMultiplier)),
		StandardFeeCharged: fromWei(base.Mul(standardMultiplier)),
		FastFeeCharged:     fromWei(base.Mul(fastMultiplier)),
		MaxFeeCharged:      fromWei(base.Mul(maxMultiplier)),
	}
}

// GetFeeStats estimates transfer fees from the network's current fee
// parameters
func (c *Client) GetFeeStats(ctx context.Context, network string) (FeeEstimate, error) {
	provider, _, err := c.getProvider(ctx, network)
	if err != nil {
		return FeeEstimate{}, err
	}

	chain, err := provider.GetChain(ctx)
	if err != nil {
		return FeeEstimate{}, err
	}

	params := chain.ConsensusParameters.FeeParameters
	gasPerByte, err := params.GasPerByte.Uint64()
	if err != nil {
		return FeeEstimate{}, err
	}
	gasPriceFactor, err := params.GasPriceFactor.Uint64()
	if err != nil {
		return FeeEstimate{}, err
	}

	return EstimateFees(gasPerByte, gasPriceFactor), nil
}

func fromWei(v decimal.Decimal) float64 {
	return v.Shift(-18).InexactFloat64()
}
