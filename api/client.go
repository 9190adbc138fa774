// Package api is a thin layer over a Fuel chain client.
//
// Files:
//
//	config.go      - network registry and endpoints
//	links.go       - explorer links
//	types.go       - receipt and parameter structs
//	sdk.go         - chain client interfaces and the GraphQL backed implementation
//	base.go        - client struct, options, unit helpers, default client
//	transaction.go - transaction lookup
//	balance.go     - balance lookup
//	fees.go        - fee estimation
//	send.go        - transfers
//	address.go     - address validation
//
// Usage:
//
//	client := api.NewClient(api.WithLogger(logger))
//	balance, err := client.GetBalance(ctx, addr, api.BaseAssetID, "main", 9)
//	fees, err := client.GetFeeStats(ctx, "testnet")
//	link := api.GetTransactionLink(txID, "main")
package api
