package hd

import (
	"encoding/hex"
	"math/big"
	"strings"
)

func HexEncode(bytes []byte) string {
	return hex.EncodeToString(bytes)
}

// HexDecode accepts upper or lower case digits.
func HexDecode(str string) ([]byte, error) {
	return hex.DecodeString(str)
}

func IsValidHex(str string) bool {
	if len(str)%2 != 0 {
		return false
	}
	for i := 0; i < len(str); i++ {
		if !isHexDigit(str[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// IntToHex renders a non-negative integer as lower-case hex of even length.
// When size is positive the result is left-padded with zero bytes to size
// bytes, so leading zero bytes of a scalar are preserved.
func IntToHex(i *big.Int, size int) string {
	h := i.Text(16)
	if len(h)%2 != 0 {
		h = "0" + h
	}
	if size > 0 && len(h) < size*2 {
		h = strings.Repeat("0", size*2-len(h)) + h
	}
	return h
}

func HexToInt(str string) (*big.Int, error) {
	b, err := HexDecode(str)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// intToBytes returns i as a big-endian value of exactly size bytes.
func intToBytes(i *big.Int, size int) []byte {
	out := make([]byte, size)
	return i.FillBytes(out)
}
