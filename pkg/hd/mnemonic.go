package hd

import (
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// Valid BIP39 entropy sizes are 128 to 256 bits in steps of 32,
// giving 12 to 24 words.
const (
	MinMnemonicWords = 12
	MaxMnemonicWords = 24
)

// GenerateMnemonic returns a fresh English BIP39 phrase of the given length.
func GenerateMnemonic(words int) (string, error) {
	if words < MinMnemonicWords || words > MaxMnemonicWords || words%3 != 0 {
		return "", NewErr(ImportError, "mnemonic must be 12, 15, 18, 21 or 24 words, got %d", words)
	}
	entropy, err := bip39.NewEntropy(words / 3 * 32)
	if err != nil {
		return "", NewErr(ImportError, "cannot generate entropy: %v", err)
	}
	return bip39.NewMnemonic(entropy)
}

// NewMasterFromMnemonic stretches a BIP39 phrase and optional passphrase
// into a 64-byte seed and derives the master node from it.
func NewMasterFromMnemonic(mnemonic, passphrase string) (*Master, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, NewErr(ImportError, "invalid mnemonic: %v", err)
	}
	return NewMaster(seed)
}
