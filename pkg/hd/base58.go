package hd

import (
	"github.com/mr-tron/base58"
)

const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Base58Encode maps each leading zero byte to one leading '1', followed by
// the rest of the bytes as a big-endian number in base 58.
func Base58Encode(bytes []byte) string {
	// https://digitalbazaar.github.io/base58-spec/
	return base58.FastBase58Encoding(bytes)
}

func Base58Decode(str string) ([]byte, error) {
	if str == "" {
		return []byte{}, nil
	}
	bytes, err := base58.FastBase58Decoding(str)
	if err != nil {
		return nil, NewErr(InvalidBase58, "Base58Decode: %v", err)
	}
	return bytes, nil
}

func Base58EncodeCheck(payload []byte) string {
	// https://en.bitcoin.it/Base58Check_encoding
	sum := checksum(payload)
	data := make([]byte, 0, len(payload)+4)
	data = append(data, payload...)
	data = append(data, sum[:]...)
	return base58.FastBase58Encoding(data)
}

// Base58DecodeCheck decodes str and returns the payload without its checksum.
func Base58DecodeCheck(str string) ([]byte, error) {
	data, err := Base58Decode(str)
	if err != nil {
		return nil, err
	}
	err = Base58VerifyChecksum(data, str)
	if err != nil {
		return nil, err
	}
	return data[0 : len(data)-4], nil
}

func Base58VerifyChecksum(bytes []byte, str string) error {
	if len(bytes) < 5 {
		return NewErr(ChecksumMismatch, "Base58Check: too short")
	}
	split := len(bytes) - 4
	sum := checksum(bytes[0:split])
	check := bytes[split:]
	if check[0] != sum[0] || check[1] != sum[1] || check[2] != sum[2] || check[3] != sum[3] {
		return NewErr(ChecksumMismatch, "Base58Check: wrong checksum")
	}
	// each leading zero byte must be spelled as exactly one leading '1'.
	zeros := 0
	for zeros < len(bytes) && bytes[zeros] == 0 {
		zeros++
	}
	ones := 0
	for ones < len(str) && str[ones] == '1' {
		ones++
	}
	if zeros != ones {
		return NewErr(ChecksumMismatch, "Base58Check: wrong padding")
	}
	return nil
}
