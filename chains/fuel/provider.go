package fuel

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const transactionQuery = `query Transaction($id: TransactionId!) {
  transaction(id: $id) {
    id
    rawPayload
  }
}`

const transactionWithReceiptsQuery = `query TransactionWithReceipts($id: TransactionId!) {
  transaction(id: $id) {
    id
    rawPayload
    status {
      __typename
      ... on SubmittedStatus {
        time
      }
      ... on SuccessStatus {
        transactionId
        time
        totalGas
        totalFee
        block { height }
        receipts { ...receiptFragment }
      }
      ... on FailureStatus {
        transactionId
        time
        reason
        totalGas
        totalFee
        block { height }
        receipts { ...receiptFragment }
      }
      ... on SqueezedOutStatus {
        reason
      }
    }
  }
}

fragment receiptFragment on Receipt {
  receiptType
  id
  to
  toAddress
  amount
  assetId
  gasUsed
  result
}`

const balanceQuery = `query Balance($owner: Address!, $assetId: AssetId!) {
  balance(owner: $owner, assetId: $assetId) {
    amount
  }
}`

const chainQuery = `query Chain {
  chain {
    name
    latestBlock { height }
    consensusParameters {
      chainId
      baseAssetId
      feeParams { gasPerByte gasPriceFactor }
      txParams { maxGasPerTx }
    }
  }
}`

const submitMutation = `mutation Submit($tx: HexString!) {
  submit(tx: $tx) {
    id
  }
}`

// Provider talks to a Fuel node over its GraphQL endpoint
type Provider struct {
	url        string
	httpClient *http.Client
}

type Option func(*Provider)

func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// NewProvider creates a provider for the given GraphQL endpoint
func NewProvider(url string, opts ...Option) *Provider {
	p := &Provider{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// URL returns the endpoint the provider queries
func (p *Provider) URL() string {
	return p.url
}

// GetTransaction returns the transaction with the given id, or nil if the
// node does not know it
func (p *Provider) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	var out struct {
		Transaction *Transaction `json:"transaction"`
	}
	if err := p.query(ctx, transactionQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Transaction, nil
}

type statusWire struct {
	Typename      string    `json:"__typename"`
	TransactionID string    `json:"transactionId"`
	Time          string    `json:"time"`
	Reason        string    `json:"reason"`
	TotalGas      Quantity  `json:"totalGas"`
	TotalFee      Quantity  `json:"totalFee"`
	Receipts      []Receipt `json:"receipts"`
	Block         *struct {
		Height Quantity `json:"height"`
	} `json:"block"`
}

// GetTransactionWithReceipts returns the transaction together with its
// status and receipts, or nil if the node does not know it
func (p *Provider) GetTransactionWithReceipts(ctx context.Context, id string) (*Transaction, error) {
	var out struct {
		Transaction *struct {
			ID         string      `json:"id"`
			RawPayload string      `json:"rawPayload"`
			Status     *statusWire `json:"status"`
		} `json:"transaction"`
	}
	if err := p.query(ctx, transactionWithReceiptsQuery, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Transaction == nil {
		return nil, nil
	}

	tx := &Transaction{
		ID:         out.Transaction.ID,
		RawPayload: out.Transaction.RawPayload,
	}
	if s := out.Transaction.Status; s != nil {
		tx.Status = &TransactionStatus{
			Type:          StatusType(s.Typename),
			TransactionID: s.TransactionID,
			Time:          s.Time,
			Reason:        s.Reason,
			TotalGas:      s.TotalGas,
			TotalFee:      s.TotalFee,
			Receipts:      s.Receipts,
		}
		if s.Block != nil {
			tx.Status.BlockHeight = s.Block.Height
		}
	}
	return tx, nil
}

// GetBalance returns the owner's balance of an asset in base units
func (p *Provider) GetBalance(ctx context.Context, owner Address, assetID string) (*big.Int, error) {
	var out struct {
		Balance struct {
			Amount Quantity `json:"amount"`
		} `json:"balance"`
	}
	vars := map[string]any{
		"owner":   owner.String(),
		"assetId": assetID,
	}
	if err := p.query(ctx, balanceQuery, vars, &out); err != nil {
		return nil, err
	}
	return out.Balance.Amount.Big(), nil
}

// GetChain returns the chain metadata and its consensus parameters
func (p *Provider) GetChain(ctx context.Context) (*ChainInfo, error) {
	var out struct {
		Chain struct {
			Name        string `json:"name"`
			LatestBlock struct {
				Height Quantity `json:"height"`
			} `json:"latestBlock"`
			ConsensusParameters struct {
				ChainID     Quantity      `json:"chainId"`
				BaseAssetID string        `json:"baseAssetId"`
				FeeParams   FeeParameters `json:"feeParams"`
				TxParams    struct {
					MaxGasPerTx Quantity `json:"maxGasPerTx"`
				} `json:"txParams"`
			} `json:"consensusParameters"`
		} `json:"chain"`
	}
	if err := p.query(ctx, chainQuery, nil, &out); err != nil {
		return nil, err
	}

	c := out.Chain
	return &ChainInfo{
		Name:              c.Name,
		LatestBlockHeight: c.LatestBlock.Height,
		ConsensusParameters: ConsensusParameters{
			ChainID:       c.ConsensusParameters.ChainID,
			BaseAssetID:   c.ConsensusParameters.BaseAssetID,
			FeeParameters: c.ConsensusParameters.FeeParams,
			MaxGasPerTx:   c.ConsensusParameters.TxParams.MaxGasPerTx,
		},
	}, nil
}

// Submit sends an encoded, signed transaction and returns its id
func (p *Provider) Submit(ctx context.Context, encoded []byte) (string, error) {
	var out struct {
		Submit struct {
			ID string `json:"id"`
		} `json:"submit"`
	}
	if err := p.query(ctx, submitMutation, map[string]any{"tx": hexutil.Encode(encoded)}, &out); err != nil {
		return "", err
	}
	if out.Submit.ID == "" {
		return "", fmt.Errorf("node returned an empty transaction id")
	}
	return out.Submit.ID, nil
}
