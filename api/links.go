package api

// GetTransactionLink returns the explorer URL of a transaction
func GetTransactionLink(txID, network string) string {
	return GetNetwork(network).TransactionLink(txID)
}

// GetWalletLink returns the explorer URL of an account
func GetWalletLink(address, network string) string {
	return GetNetwork(network).WalletLink(address)
}
