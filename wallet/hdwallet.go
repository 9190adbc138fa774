package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tyler-smith/go-bip39"
)

// FuelCoinType is the SLIP-44 coin type registered for Fuel
const FuelCoinType = 1179993420

// FuelDerivationPath is formatted with the account index
var FuelDerivationPath = fmt.Sprintf("m/44'/%d'/%%d'/0/0", FuelCoinType)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// secp256k1 group order
var curveOrder = btcec.S256().N

// HDKey represents a hierarchical deterministic key
type HDKey struct {
	PrivateKey []byte
	PublicKey  []byte
	ChainCode  []byte
}

// NewMnemonic generates a 24 word recovery phrase
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// DerivePrivateKey derives the Fuel account key of a mnemonic
func DerivePrivateKey(mnemonic string, account uint32) ([]byte, error) {
	seed, err := seedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	path, err := accounts.ParseDerivationPath(fmt.Sprintf(FuelDerivationPath, account))
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path: %w", err)
	}

	key, err := deriveKey(seed, path)
	if err != nil {
		return nil, err
	}
	return key.PrivateKey, nil
}

// MasterFingerprint identifies the seed of a mnemonic: the first four bytes
// of HASH160 of the master public key
func MasterFingerprint(mnemonic string) (uint32, error) {
	seed, err := seedFromMnemonic(mnemonic)
	if err != nil {
		return 0, err
	}

	master, err := newMasterKey(seed)
	if err != nil {
		return 0, fmt.Errorf("failed to create master key: %w", err)
	}
	return fingerprint(master.PublicKey), nil
}

func seedFromMnemonic(mnemonic string) ([]byte, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("failed to create seed: %w", err)
	}
	return seed, nil
}

// DerivePrivateKeyHex is DerivePrivateKey encoded as 0x-prefixed hex
func DerivePrivateKeyHex(mnemonic string, account uint32) (string, error) {
	key, err := DerivePrivateKey(mnemonic, account)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(key), nil
}

func deriveKey(seed []byte, path accounts.DerivationPath) (*HDKey, error) {
	masterKey, err := newMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	childKey := masterKey
	for _, childNum := range path {
		childKey, err = deriveChild(childKey, childNum)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child: %w", err)
		}
	}
	return childKey, nil
}

// newMasterKey creates a master key from seed
func newMasterKey(seed []byte) (*HDKey, error) {
	hash := hmacSHA512([]byte("Bitcoin seed"), seed)

	privateKey := hash[:32]
	if !isValidPrivateKey(privateKey) {
		return nil, fmt.Errorf("invalid private key")
	}

	return &HDKey{
		PrivateKey: privateKey,
		PublicKey:  derivePublicKey(privateKey),
		ChainCode:  hash[32:],
	}, nil
}

// deriveChild derives a child key from parent
func deriveChild(parent *HDKey, childNum uint32) (*HDKey, error) {
	var data []byte
	if isHardened(childNum) {
		data = append([]byte{0x00}, parent.PrivateKey...)
	} else {
		data = append([]byte{}, parent.PublicKey...)
	}
	data = binary.BigEndian.AppendUint32(data, childNum)

	hash := hmacSHA512(parent.ChainCode, data)
	il, ir := hash[:32], hash[32:]

	ilInt := new(big.Int).SetBytes(il)
	if ilInt.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("invalid child key at index %d", childNum)
	}

	keyInt := new(big.Int).Add(new(big.Int).SetBytes(parent.PrivateKey), ilInt)
	keyInt.Mod(keyInt, curveOrder)
	if keyInt.Sign() == 0 {
		return nil, fmt.Errorf("invalid child key at index %d", childNum)
	}

	privateKey := keyInt.FillBytes(make([]byte, 32))

	return &HDKey{
		PrivateKey: privateKey,
		PublicKey:  derivePublicKey(privateKey),
		ChainCode:  ir,
	}, nil
}

// derivePublicKey returns the compressed public key
func derivePublicKey(privateKey []byte) []byte {
	_, pub := btcec.PrivKeyFromBytes(privateKey)
	return pub.SerializeCompressed()
}

func hmacSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func isValidPrivateKey(privateKey []byte) bool {
	if len(privateKey) != 32 {
		return false
	}
	keyInt := new(big.Int).SetBytes(privateKey)
	return keyInt.Sign() != 0 && keyInt.Cmp(curveOrder) < 0
}

func isHardened(childNum uint32) bool {
	return childNum >= 0x80000000
}

// fingerprint is the first four bytes of HASH160(pubkey)
func fingerprint(publicKey []byte) uint32 {
	return binary.BigEndian.Uint32(btcutil.Hash160(publicKey)[:4])
}
