package cmd

import (
	"fmt"

	"github.com/chinmay1088/fuelkit/api"
	"github.com/chinmay1088/fuelkit/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network [main|testnet]",
	Short: "Show or change the default network",
	Long: `Show the known networks or switch the default between main and testnet.

The choice is stored in the config file. --network overrides it per command.

Examples:
  fuelkit network            # Show networks and the current default
  fuelkit network main       # Switch to mainnet
  fuelkit network testnet    # Switch to testnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return showNetworks(cmd)
	}

	network, err := api.LookupNetwork(args[0])
	if err != nil {
		return err
	}
	return setNetwork(cmd, network)
}

func showNetworks(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	current, err := currentNetwork()
	if err != nil {
		return err
	}

	if current.ID == api.NetworkMain {
		fmt.Fprintf(out, "🌐 Current network: %s\n", color.GreenString(networkLabel(current)))
	} else {
		fmt.Fprintf(out, "🌐 Current network: %s\n", color.YellowString(networkLabel(current)))
	}
	fmt.Fprintln(out)

	for _, n := range api.Networks() {
		marker := " "
		if n.ID == current.ID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-8s %s\n", marker, n.ID, n.DisplayName)
		fmt.Fprintf(out, "     GraphQL:  %s\n", n.EndpointURL)
		fmt.Fprintf(out, "     Explorer: %s\n", n.ExplorerURL)
		fmt.Fprintf(out, "     Chain ID: %d\n", n.ChainID)
	}
	return nil
}

func setNetwork(cmd *cobra.Command, network api.NetworkConfig) error {
	out := cmd.OutOrStdout()

	cfg.Network = network.ID
	if err := config.Save(configPath, cfg); err != nil {
		return err
	}
	log.Debug("default network changed", zapNetwork(network))

	fmt.Fprintf(out, "🌐 Switched to %s\n", networkLabel(network))
	if network.ID == api.NetworkMain {
		fmt.Fprintln(out, "🚨 Transfers on mainnet move real funds")
	} else {
		fmt.Fprintln(out, "⚠️  You are now on TESTNET mode")
	}
	return nil
}
