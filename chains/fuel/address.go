package fuel

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// AddressLength is the size of a Fuel address in bytes
const AddressLength = 32

// Bech32HRP is the human readable part of legacy fuel1... addresses
const Bech32HRP = "fuel"

var ErrInvalidAddress = errors.New("invalid address")

// Address is a 256-bit Fuel account address
type Address [AddressLength]byte

// NewAddress parses a b256 hex address (0x followed by 64 hex digits) or a
// legacy bech32m address with the "fuel" prefix
func NewAddress(s string) (Address, error) {
	if strings.HasPrefix(strings.ToLower(s), Bech32HRP+"1") {
		return fromBech32(s)
	}
	return FromB256(s)
}

// FromB256 parses a 0x-prefixed 32 byte hex string
func FromB256(s string) (Address, error) {
	var addr Address

	if len(s) != 2+2*AddressLength {
		return addr, fmt.Errorf("%w: expected 0x followed by %d hex characters, got %q", ErrInvalidAddress, 2*AddressLength, s)
	}

	b, err := hexutil.Decode(s)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	copy(addr[:], b)
	return addr, nil
}

func fromBech32(s string) (Address, error) {
	var addr Address

	hrp, data, version, err := bech32.DecodeGeneric(s)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if hrp != Bech32HRP || version != bech32.VersionM {
		return addr, fmt.Errorf("%w: not a fuel bech32m address", ErrInvalidAddress)
	}

	b, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(b) != AddressLength {
		return addr, fmt.Errorf("%w: decoded %d bytes", ErrInvalidAddress, len(b))
	}

	copy(addr[:], b)
	return addr, nil
}

// FromPublicKey returns the address owned by a secp256k1 public key: the
// sha256 of its 64 byte uncompressed form without the 0x04 tag
func FromPublicKey(pub *ecdsa.PublicKey) Address {
	raw := crypto.FromECDSAPub(pub)
	return Address(sha256.Sum256(raw[1:]))
}

// String returns the lowercase b256 form
func (a Address) String() string {
	return hexutil.Encode(a[:])
}

// Bech32 returns the legacy fuel1... representation
func (a Address) Bech32() (string, error) {
	conv, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("failed to convert address bits: %w", err)
	}
	return bech32.EncodeM(Bech32HRP, conv)
}

func (a Address) IsZero() bool {
	return a == Address{}
}
