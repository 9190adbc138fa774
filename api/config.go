package api

import (
	"errors"
	"fmt"
	"strings"
)

// network identifiers
const (
	NetworkMain    = "main"
	NetworkTestnet = "testnet"
)

// explorer and GraphQL endpoints
const (
	// mainnet
	MainnetExplorerURL = "https://app.fuel.network"
	MainnetGraphQLURL  = "https://mainnet.fuel.network/v1/graphql"

	// testnet
	TestnetExplorerURL = "https://app-testnet.fuel.network"
	TestnetGraphQLURL  = "https://testnet.fuel.network/v1/graphql"

	// ETH on both networks
	BaseAssetID = "0xf8f8b6283d7fa5b672b530cbb84fcccb4ff8dc40f8176ef4544ddb1f1952ad07"
)

var ErrUnknownNetwork = errors.New("unknown network")

// NetworkConfig describes one Fuel network
type NetworkConfig struct {
	ID          string `json:"id"`
	DisplayName string `json:"networkName"`
	EndpointURL string `json:"networkUrl"`
	ExplorerURL string `json:"explorerUrl"`
	ChainID     uint64 `json:"chainId"`
	BaseAssetID string `json:"baseAssetId"`
}

// TransactionLink returns the explorer page of a transaction
func (n NetworkConfig) TransactionLink(hash string) string {
	return fmt.Sprintf("%s/tx/%s", n.ExplorerURL, hash)
}

// WalletLink returns the explorer page of an account
func (n NetworkConfig) WalletLink(address string) string {
	return fmt.Sprintf("%s/account/%s", n.ExplorerURL, address)
}

var networks = map[string]NetworkConfig{
	NetworkMain: {
		ID:          NetworkMain,
		DisplayName: "mainnet",
		EndpointURL: MainnetGraphQLURL,
		ExplorerURL: MainnetExplorerURL,
		ChainID:     9889,
		BaseAssetID: BaseAssetID,
	},
	NetworkTestnet: {
		ID:          NetworkTestnet,
		DisplayName: "testnet",
		EndpointURL: TestnetGraphQLURL,
		ExplorerURL: TestnetExplorerURL,
		ChainID:     0,
		BaseAssetID: BaseAssetID,
	},
}

// GetNetwork returns the mainnet entry for "main" and the testnet entry for
// any other identifier, including unknown ones
func GetNetwork(id string) NetworkConfig {
	if id == NetworkMain {
		return networks[NetworkMain]
	}
	return networks[NetworkTestnet]
}

// LookupNetwork is the strict variant of GetNetwork
func LookupNetwork(id string) (NetworkConfig, error) {
	n, ok := networks[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return NetworkConfig{}, fmt.Errorf("%w: %q (use %q or %q)", ErrUnknownNetwork, id, NetworkMain, NetworkTestnet)
	}
	return n, nil
}

// Networks lists every known network, mainnet first
func Networks() []NetworkConfig {
	return []NetworkConfig{networks[NetworkMain], networks[NetworkTestnet]}
}
