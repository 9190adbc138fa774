package cmd

import (
	"fmt"
	"io"

	"github.com/chinmay1088/fuelkit/api"
	"github.com/chinmay1088/fuelkit/chains/fuel"
	"github.com/chinmay1088/fuelkit/wallet"
	"github.com/spf13/cobra"
)

var keyAccountFlag uint32

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the encrypted signing key",
	Long: `Manage the private key used by 'fuelkit send'.

The key is stored in a scrypt + AES-256-GCM encrypted keystore
(default ~/.fuelkit/keystore.json).

Commands:
  new      - Generate a recovery phrase and store its first account key
  recover  - Store the key of an existing recovery phrase
  import   - Store a raw hex private key
  show     - Print the address of the stored key`,
}

var keyNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new recovery phrase and keystore",
	Args:  cobra.NoArgs,
	RunE:  runKeyNew,
}

var keyRecoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Create the keystore from an existing recovery phrase",
	Args:  cobra.NoArgs,
	RunE:  runKeyRecover,
}

var keyImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Create the keystore from a hex private key",
	Args:  cobra.NoArgs,
	RunE:  runKeyImport,
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the address of the stored key",
	Args:  cobra.NoArgs,
	RunE:  runKeyShow,
}

func init() {
	keyNewCmd.Flags().Uint32Var(&keyAccountFlag, "account", 0, "account index in the derivation path")
	keyRecoverCmd.Flags().Uint32Var(&keyAccountFlag, "account", 0, "account index in the derivation path")

	keyCmd.AddCommand(keyNewCmd)
	keyCmd.AddCommand(keyRecoverCmd)
	keyCmd.AddCommand(keyImportCmd)
	keyCmd.AddCommand(keyShowCmd)
}

func runKeyNew(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ks := wallet.NewKeystore(cfg.KeystorePath)
	if ks.Exists() {
		return fmt.Errorf("keystore already exists at %s", ks.Path())
	}

	fmt.Fprintln(out, "🚀 Creating a new Fuel key")
	fmt.Fprintln(out)

	password, err := readNewPassword()
	if err != nil {
		return err
	}

	mnemonic, err := wallet.NewMnemonic()
	if err != nil {
		return err
	}
	privateKey, err := wallet.DerivePrivateKeyHex(mnemonic, keyAccountFlag)
	if err != nil {
		return err
	}
	if err := ks.Save(privateKey, password); err != nil {
		return err
	}

	fmt.Fprintln(out, "✅ Keystore created")
	if err := printFingerprint(out, mnemonic); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "🔐 Recovery Phrase (24 words):")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "   %s\n", mnemonic)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "⚠️  IMPORTANT:")
	fmt.Fprintln(out, "   - Write down this recovery phrase and store it securely")
	fmt.Fprintln(out, "   - Anyone with this phrase can access your funds")
	fmt.Fprintln(out, "   - It is shown only once")
	fmt.Fprintln(out)
	return printKeyAddress(out, privateKey)
}

func runKeyRecover(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ks := wallet.NewKeystore(cfg.KeystorePath)
	if ks.Exists() {
		return fmt.Errorf("keystore already exists at %s", ks.Path())
	}

	fmt.Fprintln(out, "📝 Recover key from recovery phrase")
	fmt.Fprintln(out)

	mnemonic, err := readSecret("Enter recovery phrase: ")
	if err != nil {
		return err
	}
	privateKey, err := wallet.DerivePrivateKeyHex(mnemonic, keyAccountFlag)
	if err != nil {
		return err
	}

	password, err := readNewPassword()
	if err != nil {
		return err
	}
	if err := ks.Save(privateKey, password); err != nil {
		return err
	}

	fmt.Fprintln(out, "✅ Keystore created")
	if err := printFingerprint(out, mnemonic); err != nil {
		return err
	}
	return printKeyAddress(out, privateKey)
}

func runKeyImport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ks := wallet.NewKeystore(cfg.KeystorePath)
	if ks.Exists() {
		return fmt.Errorf("keystore already exists at %s", ks.Path())
	}

	privateKey, err := readSecret("Enter private key (hex): ")
	if err != nil {
		return err
	}
	if _, err := fuel.WalletFromPrivateKey(privateKey, nil); err != nil {
		return err
	}

	password, err := readNewPassword()
	if err != nil {
		return err
	}
	if err := ks.Save(privateKey, password); err != nil {
		return err
	}

	fmt.Fprintln(out, "✅ Keystore created")
	return printKeyAddress(out, privateKey)
}

func runKeyShow(cmd *cobra.Command, args []string) error {
	ks := wallet.NewKeystore(cfg.KeystorePath)
	if !ks.Exists() {
		return fmt.Errorf("%w at %s, run 'fuelkit key new'", wallet.ErrKeystoreNotFound, ks.Path())
	}

	password, err := readSecret("Enter your keystore password: ")
	if err != nil {
		return err
	}
	privateKey, err := ks.Load(password)
	if err != nil {
		return fmt.Errorf("failed to unlock keystore: %w", err)
	}
	return printKeyAddress(cmd.OutOrStdout(), privateKey)
}

// printFingerprint shows the master key fingerprint so a recovered phrase
// can be matched against the original
func printFingerprint(out io.Writer, mnemonic string) error {
	fp, err := wallet.MasterFingerprint(mnemonic)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "🔑 Fingerprint: %08x\n", fp)
	return nil
}

func printKeyAddress(out io.Writer, privateKey string) error {
	w, err := fuel.WalletFromPrivateKey(privateKey, nil)
	if err != nil {
		return err
	}

	network, err := currentNetwork()
	if err != nil {
		return err
	}

	addr := w.Address()
	fmt.Fprintf(out, "📍 Address: %s\n", addr.String())
	if b32, err := addr.Bech32(); err == nil {
		fmt.Fprintf(out, "   Legacy:  %s\n", b32)
	}
	fmt.Fprintf(out, "   🔗 %s\n", api.GetWalletLink(addr.String(), network.ID))
	return nil
}
