package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/chinmay1088/fuelkit/api"
	"github.com/chinmay1088/fuelkit/chains/fuel"
	"github.com/chinmay1088/fuelkit/wallet"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// EnvPrivateKey is read when --private-key is not given
const EnvPrivateKey = "FUEL_PRIVATE_KEY"

var errCannotEncode = fmt.Errorf("this build cannot encode transfers: %w", fuel.ErrNoTransferBuilder)

// transferCapable is implemented by SDKs that know up front whether
// transfers can be encoded
type transferCapable interface {
	CanTransfer() bool
}

var (
	sendAssetFlag      string
	sendDecimalsFlag   int32
	sendPrivateKeyFlag string
	sendYesFlag        bool
)

var sendCmd = &cobra.Command{
	Use:     "send [address] [amount]",
	Aliases: []string{"pay"},
	Short:   "Send funds to another account",
	Long: `Send funds to another account and wait for the transaction to finalize.

The signing key is taken from --private-key, then $FUEL_PRIVATE_KEY (a .env
file in the working directory is loaded), then the encrypted keystore.

Examples:
  fuelkit send 0x1b4b... 0.01                  # Send 0.01 ETH
  fuelkit send 0x1b4b... 25 --asset 0x... -d 6 # Send 25 units of another asset`,
	Args: cobra.ExactArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendAssetFlag, "asset", "", "asset id (default: the network base asset)")
	sendCmd.Flags().Int32VarP(&sendDecimalsFlag, "decimals", "d", 9, "decimals of the asset")
	sendCmd.Flags().StringVar(&sendPrivateKeyFlag, "private-key", "", "hex private key to sign with")
	sendCmd.Flags().BoolVarP(&sendYesFlag, "yes", "y", false, "skip the confirmation prompt")
}

func runSend(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	to := args[0]

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	network, err := currentNetwork()
	if err != nil {
		return err
	}

	sdk := newSDK()
	if t, ok := sdk.(transferCapable); ok && !t.CanTransfer() {
		return errCannotEncode
	}

	privateKey, err := signingKey()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "💸 Sending Transaction")
	fmt.Fprintf(out, "   To:      %s\n", to)
	fmt.Fprintf(out, "   Amount:  %s\n", args[1])
	fmt.Fprintf(out, "   Network: %s\n", networkLabel(network))
	fmt.Fprintln(out)

	if !sendYesFlag {
		prompt := "⚠️ You are on testnet. No real funds will be sent."
		if network.ID == api.NetworkMain {
			prompt = "🚨 You are on main network. Real funds will be sent."
		}
		if !confirm(prompt + " Confirm?") {
			fmt.Fprintln(out, "❌ Transaction cancelled by user")
			return nil
		}
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	stop := spinner("Waiting for the transaction to finalize...")
	result, err := clientFor(sdk).SendTransaction(ctx, api.SendTransactionParams{
		To:           to,
		Amount:       amount,
		Network:      network.ID,
		PrivateKey:   privateKey,
		Decimals:     sendDecimalsFlag,
		TokenAddress: sendAssetFlag,
	})
	stop()

	if errors.Is(err, fuel.ErrNoTransferBuilder) {
		return errCannotEncode
	}
	if err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	r := result.Receipt
	fmt.Fprintln(out, "✅ Transaction finalized")
	fmt.Fprintf(out, "   Hash: %s\n", r.TransactionHash)
	fmt.Fprintf(out, "   From: %s\n", r.From)
	fmt.Fprintf(out, "   Fee:  %.9f %s\n", r.GasCostInCrypto, r.GasCostCryptoCurrency)
	fmt.Fprintf(out, "   🔗 %s\n", r.TransactionLink)
	return nil
}

// signingKey resolves the private key from flag, environment or keystore
func signingKey() (string, error) {
	if sendPrivateKeyFlag != "" {
		return sendPrivateKeyFlag, nil
	}
	if key := os.Getenv(EnvPrivateKey); key != "" {
		return key, nil
	}

	ks := wallet.NewKeystore(cfg.KeystorePath)
	if !ks.Exists() {
		return "", fmt.Errorf("no signing key: pass --private-key, set %s or run 'fuelkit key new'", EnvPrivateKey)
	}

	password, err := readSecret("Enter your keystore password: ")
	if err != nil {
		return "", err
	}
	key, err := ks.Load(password)
	if err != nil {
		return "", fmt.Errorf("failed to unlock keystore: %w", err)
	}
	return key, nil
}

// spinner draws an indeterminate progress bar on stderr until stop is called
func spinner(description string) (stop func()) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				_ = bar.Finish()
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
