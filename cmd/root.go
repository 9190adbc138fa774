package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/chinmay1088/fuelkit/api"
	"github.com/chinmay1088/fuelkit/config"
	"github.com/chinmay1088/fuelkit/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.3.0"
)

var (
	configPath  string
	networkFlag string

	cfg *config.Config
	log = zap.NewNop()

	// newSDK is swapped out by tests
	newSDK = func() api.SDK {
		return api.NewFuelSDK()
	}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fuelkit",
	Short: "A command-line toolkit for the Fuel network",
	Long: `fuelkit inspects and uses the Fuel network from the terminal.

Features:
  • Explorer links for transactions and accounts
  • Address validation (b256 and legacy fuel1 addresses)
  • Balances for any asset
  • Transaction receipts
  • Fee estimates in low, standard, fast and max tiers
  • Transfers signed with a local encrypted keystore
  • Mainnet and Testnet support

Examples:
  fuelkit key new                        # Create a keystore from a new recovery phrase
  fuelkit balance 0x1b4b...              # Check the ETH balance of an account
  fuelkit fees --network main            # Estimate mainnet fees
  fuelkit tx 0x2b3c...                   # Show a transaction receipt
  fuelkit send 0x1b4b... 0.01            # Send 0.01 ETH
  fuelkit network main                   # Make mainnet the default`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.fuelkit/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&networkFlag, "network", "n", "", "network to use: main or testnet")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(feesCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads .env, the config file and the logger before any command runs
func setup(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = "debug"
	}

	l, err := logger.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	log = l
	return nil
}

// currentNetwork returns the --network flag or the configured default,
// rejecting identifiers outside the registry
func currentNetwork() (api.NetworkConfig, error) {
	id := networkFlag
	if id == "" {
		id = cfg.Network
	}
	return api.LookupNetwork(id)
}

func newClient() *api.Client {
	return clientFor(newSDK())
}

func clientFor(sdk api.SDK) *api.Client {
	return api.NewClient(api.WithSDK(sdk), api.WithLogger(log))
}

// commandContext bounds a chain call by the configured timeout
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, cfg.Timeout)
}

func networkLabel(n api.NetworkConfig) string {
	return strings.ToUpper(n.DisplayName[:1]) + n.DisplayName[1:]
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "fuelkit v%s\n", version)
	},
}
