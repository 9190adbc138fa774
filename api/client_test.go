package api

import (
	"context"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/chinmay1088/fuelkit/chains/fuel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func statusTx(status fuel.StatusType, fee, gas int64) *fuel.Transaction {
	return &fuel.Transaction{
		ID: testTxID,
		Status: &fuel.TransactionStatus{
			Type:     status,
			TotalFee: quantity(fee),
			TotalGas: quantity(gas),
		},
	}
}

func TestGetTransactionSuccess(t *testing.T) {
	raw := &fuel.Transaction{ID: testTxID, RawPayload: "0x00"}
	sdk := &fakeSDK{provider: &fakeProvider{
		tx:           raw,
		withReceipts: statusTx(fuel.StatusSuccess, 1250, 41233),
	}}

	before := time.Now().UTC()
	result, err := NewClient(WithSDK(sdk)).GetTransaction(context.Background(), testTxID, "testnet")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Same(t, raw, result.TransactionData)

	r := result.Receipt
	assert.True(t, r.IsSuccessful)
	assert.False(t, r.IsFailed)
	assert.True(t, r.IsExecuted)
	assert.False(t, r.IsPending)
	assert.False(t, r.IsInvalid)
	assert.Equal(t, "ETH", r.GasCostCryptoCurrency)
	assert.InDelta(t, 0.00000125, r.GasCostInCrypto, 1e-18)
	assert.Equal(t, uint64(41233), r.GasLimit)
	assert.Equal(t, "", r.From)
	assert.Equal(t, "", r.RejectReason)
	assert.Equal(t, uint64(0), r.Nonce)
	assert.Equal(t, "testnet", r.Network)
	assert.Equal(t, testTxID, r.TransactionHash)
	assert.Equal(t, "https://app-testnet.fuel.network/tx/"+testTxID, r.TransactionLink)
	assert.False(t, r.Date.Before(before))
}

func TestGetTransactionFailure(t *testing.T) {
	sdk := &fakeSDK{provider: &fakeProvider{
		tx:           &fuel.Transaction{ID: testTxID},
		withReceipts: statusTx(fuel.StatusFailure, 10, 5),
	}}

	result, err := NewClient(WithSDK(sdk)).GetTransaction(context.Background(), testTxID, "main")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Receipt.IsSuccessful)
	assert.True(t, result.Receipt.IsFailed)
	assert.Equal(t, "main", result.Receipt.Network)
	assert.Equal(t, "https://app.fuel.network/tx/"+testTxID, result.Receipt.TransactionLink)
	assert.Equal(t, []string{MainnetGraphQLURL}, sdk.connected)
}

func TestGetTransactionWithoutFeeFields(t *testing.T) {
	sdk := &fakeSDK{provider: &fakeProvider{
		tx: &fuel.Transaction{ID: testTxID},
		withReceipts: &fuel.Transaction{
			ID:     testTxID,
			Status: &fuel.TransactionStatus{Type: fuel.StatusSqueezedOut, Reason: "squeezed"},
		},
	}}

	result, err := NewClient(WithSDK(sdk)).GetTransaction(context.Background(), testTxID, "testnet")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.Receipt.IsSuccessful)
	assert.False(t, result.Receipt.IsFailed)
	assert.Zero(t, result.Receipt.GasCostInCrypto)
	assert.Zero(t, result.Receipt.GasLimit)
	assert.Equal(t, "", result.Receipt.RejectReason)
}

func TestGetTransactionNotFound(t *testing.T) {
	client := NewClient(WithSDK(&fakeSDK{provider: &fakeProvider{}}))
	result, err := client.GetTransaction(context.Background(), testTxID, "testnet")
	require.NoError(t, err)
	assert.Nil(t, result)

	client = NewClient(WithSDK(&fakeSDK{provider: &fakeProvider{tx: &fuel.Transaction{ID: testTxID}}}))
	result, err = client.GetTransaction(context.Background(), testTxID, "testnet")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetTransactionPropagatesErrors(t *testing.T) {
	client := NewClient(WithSDK(&fakeSDK{provider: &fakeProvider{err: errNode}}))
	result, err := client.GetTransaction(context.Background(), "invalid-tx-id", "testnet")
	assert.ErrorIs(t, err, errNode)
	assert.Nil(t, result)
}

func TestGetBalance(t *testing.T) {
	provider := &fakeProvider{balance: big.NewInt(1_500_000_000)}
	client := NewClient(WithSDK(&fakeSDK{provider: provider}))

	balance, err := client.GetBalance(context.Background(), testAddress, BaseAssetID, "testnet", 9)
	require.NoError(t, err)
	assert.Equal(t, "1.500000000", balance)
	assert.Equal(t, mustAddress(testAddress), provider.balanceOwner)
	assert.Equal(t, BaseAssetID, provider.balanceAsset)
}

func TestGetBalanceZero(t *testing.T) {
	client := NewClient(WithSDK(&fakeSDK{provider: &fakeProvider{balance: big.NewInt(0)}}))

	balance, err := client.GetBalance(context.Background(), testAddress, BaseAssetID, "testnet", 9)
	require.NoError(t, err)
	assert.Equal(t, "0.000000000", balance)

	balance, err = client.GetBalance(context.Background(), testAddress, BaseAssetID, "testnet", 0)
	require.NoError(t, err)
	assert.Equal(t, "0", balance)
}

func TestGetBalanceLargeAmount(t *testing.T) {
	amount, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)
	client := NewClient(WithSDK(&fakeSDK{provider: &fakeProvider{balance: amount}}))

	balance, err := client.GetBalance(context.Background(), testAddress, BaseAssetID, "main", 18)
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463.374607431768211455", balance)
}

func TestGetBalanceInvalidAddress(t *testing.T) {
	sdk := &fakeSDK{provider: &fakeProvider{balance: big.NewInt(1)}}
	_, err := NewClient(WithSDK(sdk)).GetBalance(context.Background(), "invalid-address", BaseAssetID, "testnet", 9)
	assert.ErrorIs(t, err, fuel.ErrInvalidAddress)
	assert.Empty(t, sdk.connected)
}

func TestIsValidWalletAddress(t *testing.T) {
	client := NewClient(WithSDK(&fakeSDK{}))

	assert.True(t, client.IsValidWalletAddress(testAddress))
	assert.False(t, client.IsValidWalletAddress("invalid-address"))
	assert.False(t, client.IsValidWalletAddress(""))
	assert.False(t, client.IsValidWalletAddress(testAddress[:65]))
	assert.False(t, client.IsValidWalletAddress(testAddress[2:]))
}

func TestIsValidWalletAddressDefaultClient(t *testing.T) {
	assert.True(t, IsValidWalletAddress(testAddress))
	assert.False(t, IsValidWalletAddress("0x123"))
}

func newSendClient(wallet *fakeWallet) (*Client, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	sdk := &fakeSDK{provider: &fakeProvider{}, wallet: wallet}
	return NewClient(WithSDK(sdk), WithLogger(zap.New(core))), logs
}

func sendParams() SendTransactionParams {
	return SendTransactionParams{
		To:           testAddress,
		Amount:       0.001,
		Network:      "testnet",
		PrivateKey:   testKey,
		Decimals:     9,
		TokenAddress: BaseAssetID,
	}
}

func TestSendTransaction(t *testing.T) {
	wallet := &fakeWallet{
		address: mustAddress(testSender),
		result: &fuel.TransactionResult{
			ID:     testTxID,
			Status: fuel.StatusSuccess,
			Fee:    quantity(2000),
		},
	}
	client, logs := newSendClient(wallet)

	result, err := client.SendTransaction(context.Background(), sendParams())
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, wallet.transfers, 1)
	call := wallet.transfers[0]
	assert.Equal(t, mustAddress(testAddress), call.to)
	assert.Equal(t, "1000000", call.amount.String())
	assert.Equal(t, BaseAssetID, call.assetID)
	assert.Equal(t, uint64(1_000_000), call.params.GasLimit)

	r := result.Receipt
	assert.Equal(t, 0.001, r.Amount)
	assert.Equal(t, testSender, r.From)
	assert.Equal(t, testAddress, r.To)
	assert.Equal(t, "ETH", r.GasCostCryptoCurrency)
	assert.InDelta(t, 0.000002, r.GasCostInCrypto, 1e-18)
	assert.Equal(t, "testnet", r.Network)
	assert.Equal(t, uint64(0), r.Nonce)
	assert.Equal(t, testTxID, r.TransactionHash)
	assert.Equal(t, "https://app-testnet.fuel.network/tx/"+testTxID, r.TransactionLink)
	assert.Same(t, wallet.result, r.TransactionReceipt)
	assert.Equal(t, "", r.RejectReason)
	assert.Equal(t, testTxID, result.TransactionData.ID())
	assert.Zero(t, logs.Len())
}

func TestSendTransactionRoundsAmount(t *testing.T) {
	wallet := &fakeWallet{address: mustAddress(testSender), result: &fuel.TransactionResult{}}
	client, _ := newSendClient(wallet)

	params := sendParams()
	params.Amount = 0.1
	params.Decimals = 18
	_, err := client.SendTransaction(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", wallet.transfers[0].amount.String())

	params.Amount = 1.23456789
	params.Decimals = 2
	_, err = client.SendTransaction(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "123", wallet.transfers[1].amount.String())
}

func TestSendTransactionFailures(t *testing.T) {
	cases := map[string]struct {
		mutate func(p *SendTransactionParams)
		want   error
	}{
		"zero amount": {
			mutate: func(p *SendTransactionParams) { p.Amount = 0 },
			want:   fuel.ErrInvalidAmount,
		},
		"negative amount": {
			mutate: func(p *SendTransactionParams) { p.Amount = -1 },
			want:   fuel.ErrInvalidAmount,
		},
		"invalid destination": {
			mutate: func(p *SendTransactionParams) { p.To = "invalid-address" },
			want:   fuel.ErrInvalidAddress,
		},
		"invalid private key": {
			mutate: func(p *SendTransactionParams) { p.PrivateKey = "test-private-key" },
			want:   fuel.ErrInvalidPrivateKey,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			wallet := &fakeWallet{address: mustAddress(testSender)}
			client, logs := newSendClient(wallet)

			params := sendParams()
			tc.mutate(&params)

			result, err := client.SendTransaction(context.Background(), params)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, result)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "send transaction error", entry.Message)
			assert.Equal(t, params.Network, entry.ContextMap()["network"])
		})
	}
}

func TestSendTransactionWaitFailure(t *testing.T) {
	failed := &fuel.TransactionFailedError{ID: testTxID, Status: fuel.StatusFailure, Reason: "Revert(0)"}
	wallet := &fakeWallet{address: mustAddress(testSender), waitErr: failed}
	client, logs := newSendClient(wallet)

	_, err := client.SendTransaction(context.Background(), sendParams())
	assert.Same(t, failed, err)
	assert.Equal(t, 1, logs.Len())
}

func TestSendTransactionConnectError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	client := NewClient(WithSDK(&fakeSDK{connectErr: errNode}), WithLogger(zap.New(core)))

	_, err := client.SendTransaction(context.Background(), sendParams())
	assert.ErrorIs(t, err, errNode)
	assert.Equal(t, 1, logs.Len())
}

func TestGetTransactionSaturatesGas(t *testing.T) {
	status := statusTx(fuel.StatusSuccess, 1, 0)
	status.Status.TotalGas = fuel.NewQuantity(new(big.Int).Lsh(big.NewInt(1), 70))
	sdk := &fakeSDK{provider: &fakeProvider{
		tx:           &fuel.Transaction{ID: testTxID},
		withReceipts: status,
	}}

	result, err := NewClient(WithSDK(sdk)).GetTransaction(context.Background(), testTxID, "testnet")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint64(math.MaxUint64), result.Receipt.GasLimit)
	assert.True(t, result.Receipt.IsSuccessful)
}

func TestSendTransactionDefaultClientLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	params := sendParams()
	params.PrivateKey = "not-a-key"

	_, err := SendTransaction(context.Background(), params)
	assert.ErrorIs(t, err, fuel.ErrInvalidPrivateKey)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "send transaction error", logs.All()[0].Message)

	_, err = NewClient().SendTransaction(context.Background(), params)
	assert.ErrorIs(t, err, fuel.ErrInvalidPrivateKey)
	assert.Equal(t, 2, logs.Len())
}
