package hd

import (
	"encoding/base64"
	"math/big"
	"regexp"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKey is an immutable secp256k1 secret scalar in [1, N-1].
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// KeyFormat names a textual encoding of private key material.
type KeyFormat string

const (
	FormatInteger         KeyFormat = "integer"
	FormatHex             KeyFormat = "hex"
	FormatBase64          KeyFormat = "base64"
	FormatCompressedWIF   KeyFormat = "compressed-wif"
	FormatUncompressedWIF KeyFormat = "uncompressed-wif"
)

const (
	hexKeyLen             = 64
	base64KeyLen          = 44
	compressedWIFKeyLen   = 52
	uncompressedWIFKeyLen = 51
)

var base64KeyPattern = regexp.MustCompile(`^(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?$`)

type privateKeyFormat struct {
	format KeyFormat
	match  func(r *Registry, raw string) bool
	parse  func(r *Registry, raw string) (*PrivateKey, error)
}

// privateKeyFormats is the detection precedence for textual private keys;
// the first matching entry wins. Integers are not text and go through
// NewPrivateKeyFromInt, which ranks ahead of every entry here.
var privateKeyFormats = []privateKeyFormat{
	{FormatHex, isHexKey, parseHexKey},
	{FormatBase64, isBase64Key, parseBase64Key},
	{FormatCompressedWIF, isCompressedWIF, parseWIFKey},
	{FormatUncompressedWIF, isUncompressedWIF, parseWIFKey},
}

// PrivateKeyFormats lists the textual formats in detection order.
func PrivateKeyFormats() []KeyFormat {
	formats := []KeyFormat{FormatInteger}
	for _, f := range privateKeyFormats {
		formats = append(formats, f.format)
	}
	return formats
}

func isHexKey(_ *Registry, raw string) bool {
	return len(raw) == hexKeyLen && IsValidHex(raw)
}

func isBase64Key(_ *Registry, raw string) bool {
	return len(raw) == base64KeyLen && base64KeyPattern.MatchString(raw)
}

func isCompressedWIF(r *Registry, raw string) bool {
	return len(raw) == compressedWIFKeyLen && r.IsWIFLeadChar(raw[0], true)
}

func isUncompressedWIF(r *Registry, raw string) bool {
	return len(raw) == uncompressedWIFKeyLen && r.IsWIFLeadChar(raw[0], false)
}

func parseHexKey(_ *Registry, raw string) (*PrivateKey, error) {
	b, err := HexDecode(strings.ToLower(raw))
	if err != nil {
		return nil, NewErr(KeyFormatNotFound, "private key is not valid hex: %v", err)
	}
	return NewPrivateKeyFromBytes(b)
}

func parseBase64Key(_ *Registry, raw string) (*PrivateKey, error) {
	return ParsePrivateKeyBase64(raw)
}

func parseWIFKey(r *Registry, raw string) (*PrivateKey, error) {
	key, _, _, err := r.DecodeWIF(raw)
	return key, err
}

// GeneratePrivateKey returns a key drawn from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, NewErr(InvalidKey, "cannot generate private key: %v", err)
	}
	return &PrivateKey{key: key}, nil
}

// NewPrivateKeyFromBytes takes a 32-byte big-endian scalar.
func NewPrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	s, ok := parseScalar(b)
	if !ok {
		return nil, NewErr(InvalidKey, "private key is not a %d-byte scalar in [1, N-1]", PrivKeyLen)
	}
	return newPrivateKey(&s), nil
}

func NewPrivateKeyFromInt(i *big.Int) (*PrivateKey, error) {
	if i.Sign() <= 0 || i.Cmp(CurveOrder) >= 0 {
		return nil, NewErr(InvalidKey, "private key is not in [1, N-1]")
	}
	return NewPrivateKeyFromBytes(intToBytes(i, PrivKeyLen))
}

func newPrivateKey(s *secp256k1.ModNScalar) *PrivateKey {
	// copy: the caller's scalar must not alias our key.
	k := *s
	return &PrivateKey{key: secp256k1.NewPrivateKey(&k)}
}

// DetectPrivateKeyFormat reports which textual format raw would be parsed as.
func DetectPrivateKeyFormat(raw string) (KeyFormat, error) {
	return Networks.DetectPrivateKeyFormat(raw)
}

func (r *Registry) DetectPrivateKeyFormat(raw string) (KeyFormat, error) {
	for _, f := range privateKeyFormats {
		if f.match(r, raw) {
			return f.format, nil
		}
	}
	return "", NewErr(KeyFormatNotFound, "private key is not hex, base64 or WIF formatted")
}

// ParsePrivateKey auto-detects hex, base64, compressed WIF and uncompressed WIF,
// in that order, using the built-in network profiles to recognise WIF.
func ParsePrivateKey(raw string) (*PrivateKey, error) {
	return Networks.ParsePrivateKey(raw)
}

func (r *Registry) ParsePrivateKey(raw string) (*PrivateKey, error) {
	for _, f := range privateKeyFormats {
		if f.match(r, raw) {
			return f.parse(r, raw)
		}
	}
	return nil, NewErr(KeyFormatNotFound, "private key is not hex, base64 or WIF formatted")
}

func ParsePrivateKeyBase64(raw string) (*PrivateKey, error) {
	if !isBase64Key(nil, raw) {
		return nil, NewErr(InvalidBase64Format, "private key is not a %d-character base64 string", base64KeyLen)
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, NewErr(InvalidBase64Format, "private key is not valid base64: %v", err)
	}
	if len(b) != PrivKeyLen {
		return nil, NewErr(InvalidBase64Format, "base64 private key decodes to %d bytes", len(b))
	}
	return NewPrivateKeyFromBytes(b)
}

// Bytes returns the 32-byte big-endian scalar, leading zeros included.
func (k *PrivateKey) Bytes() []byte {
	return k.key.Serialize()
}

// Hex returns the scalar as exactly 64 lower-case hex characters.
func (k *PrivateKey) Hex() string {
	return HexEncode(k.Bytes())
}

func (k *PrivateKey) Int() *big.Int {
	return new(big.Int).SetBytes(k.Bytes())
}

func (k *PrivateKey) Base64() string {
	return base64.StdEncoding.EncodeToString(k.Bytes())
}

// Valid reports whether the scalar is in [1, N-1].
func (k *PrivateKey) Valid() bool {
	return ValidScalar(k.Bytes())
}

// PublicKey returns the compressed public key k·G.
func (k *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: scalarBaseMult(&k.key.Key), compressed: true}
}

// scalar returns a copy of the secret scalar.
func (k *PrivateKey) scalar() secp256k1.ModNScalar {
	return k.key.Key
}

// zero clears the scalar; the key must not be used afterwards.
func (k *PrivateKey) zero() {
	k.key.Zero()
}

// Equal reports whether both keys hold the same scalar.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	return other != nil && k.key.Key.Equals(&other.key.Key)
}
