package hd

import (
	"sort"
	"strings"
	"sync"
)

// NetworkParams is an immutable network profile: the version bytes used by
// addresses, WIF keys and extended keys on one chain.
type NetworkParams struct {
	name                   string
	p2pkh_address_prefix   byte
	p2sh_address_prefix    byte
	pkey_prefix            byte
	bip32_privkey_prefix   uint32
	bip32_pubkey_prefix    uint32
	compressed_wif_chars   string // possible first characters of a compressed WIF
	uncompressed_wif_chars string // possible first characters of an uncompressed WIF
}

// NetworkSpec describes a profile to be validated by NewNetworkParams.
type NetworkSpec struct {
	Name                 string
	AddressVersion       byte
	P2SHVersion          byte
	PrivKeyVersion       byte
	Bip32PrivVersion     uint32
	Bip32PubVersion      uint32
	CompressedWIFChars   string
	UncompressedWIFChars string
}

func NewNetworkParams(spec NetworkSpec) (*NetworkParams, error) {
	if spec.Name == "" {
		return nil, NewErr(UnknownNetwork, "network profile has no name")
	}
	if spec.Bip32PrivVersion == spec.Bip32PubVersion {
		return nil, NewErr(ImportError, "network %s: extended private and public versions are both %08x", spec.Name, spec.Bip32PrivVersion)
	}
	if spec.CompressedWIFChars == "" || spec.UncompressedWIFChars == "" {
		return nil, NewErr(ImportError, "network %s: WIF lead characters are required", spec.Name)
	}
	return &NetworkParams{
		name:                   spec.Name,
		p2pkh_address_prefix:   spec.AddressVersion,
		p2sh_address_prefix:    spec.P2SHVersion,
		pkey_prefix:            spec.PrivKeyVersion,
		bip32_privkey_prefix:   spec.Bip32PrivVersion,
		bip32_pubkey_prefix:    spec.Bip32PubVersion,
		compressed_wif_chars:   spec.CompressedWIFChars,
		uncompressed_wif_chars: spec.UncompressedWIFChars,
	}, nil
}

func mustNetwork(spec NetworkSpec) *NetworkParams {
	n, err := NewNetworkParams(spec)
	if err != nil {
		panic(err)
	}
	return n
}

func (n *NetworkParams) Name() string { return n.name }
func (n *NetworkParams) AddressVersion() byte { return n.p2pkh_address_prefix }
func (n *NetworkParams) P2SHVersion() byte { return n.p2sh_address_prefix }
func (n *NetworkParams) PrivKeyVersion() byte { return n.pkey_prefix }
func (n *NetworkParams) Bip32PrivVersion() uint32 { return n.bip32_privkey_prefix }
func (n *NetworkParams) Bip32PubVersion() uint32 { return n.bip32_pubkey_prefix }

// Bip32Version returns the 4 version bytes for the given extended key kind.
func (n *NetworkParams) Bip32Version(kind KeyKind) uint32 {
	if kind == Private {
		return n.bip32_privkey_prefix
	}
	return n.bip32_pubkey_prefix
}

func (n *NetworkParams) WIFLeadChars(compressed bool) string {
	if compressed {
		return n.compressed_wif_chars
	}
	return n.uncompressed_wif_chars
}

// Spec returns the profile as a NetworkSpec.
func (n *NetworkParams) Spec() NetworkSpec {
	return NetworkSpec{
		Name:                 n.name,
		AddressVersion:       n.p2pkh_address_prefix,
		P2SHVersion:          n.p2sh_address_prefix,
		PrivKeyVersion:       n.pkey_prefix,
		Bip32PrivVersion:     n.bip32_privkey_prefix,
		Bip32PubVersion:      n.bip32_pubkey_prefix,
		CompressedWIFChars:   n.compressed_wif_chars,
		UncompressedWIFChars: n.uncompressed_wif_chars,
	}
}

var Bitcoin = mustNetwork(NetworkSpec{
	Name:                 "bitcoin",
	AddressVersion:       0x00,       // 1
	P2SHVersion:          0x05,       // 3
	PrivKeyVersion:       0x80,       // K, L or 5
	Bip32PrivVersion:     0x0488ade4, // xprv
	Bip32PubVersion:      0x0488b21e, // xpub
	CompressedWIFChars:   "KL",
	UncompressedWIFChars: "5",
})

var BitcoinTestnet = mustNetwork(NetworkSpec{
	Name:                 "bitcoin_testnet",
	AddressVersion:       0x6f,       // m or n
	P2SHVersion:          0xc4,       // 2
	PrivKeyVersion:       0xef,       // c or 9
	Bip32PrivVersion:     0x04358394, // tprv
	Bip32PubVersion:      0x043587cf, // tpub
	CompressedWIFChars:   "c",
	UncompressedWIFChars: "9",
})

var Dogecoin = mustNetwork(NetworkSpec{
	Name:                 "dogecoin",
	AddressVersion:       0x1e,       // D
	P2SHVersion:          0x16,       // 9 or A
	PrivKeyVersion:       0x9e,       // Q or 6
	Bip32PrivVersion:     0x02fac398, // dgpv
	Bip32PubVersion:      0x02facafd, // dgub
	CompressedWIFChars:   "Q",
	UncompressedWIFChars: "6",
})

var DogecoinTestnet = mustNetwork(NetworkSpec{
	Name:                 "dogecoin_testnet",
	AddressVersion:       0x71,       // n
	P2SHVersion:          0xc4,       // 2
	PrivKeyVersion:       0xf1,       // c or 9
	Bip32PrivVersion:     0x04358394, // tprv
	Bip32PubVersion:      0x043587cf, // tpub
	CompressedWIFChars:   "c",
	UncompressedWIFChars: "9",
})

// Registry is an ordered table of network profiles. Where two profiles share
// version bytes, lookups by version return the one registered first.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*NetworkParams
	order  []*NetworkParams
}

func NewRegistry(networks ...*NetworkParams) *Registry {
	r := &Registry{byName: make(map[string]*NetworkParams)}
	for _, n := range networks {
		r.Register(n)
	}
	return r
}

// DefaultRegistry returns a new registry holding the built-in profiles;
// "testnet3" names bitcoin_testnet.
func DefaultRegistry() *Registry {
	r := NewRegistry(Bitcoin, BitcoinTestnet, Dogecoin, DogecoinTestnet)
	r.Alias("testnet3", BitcoinTestnet)
	return r
}

// Networks is the registry used by the package-level parsing functions.
var Networks = DefaultRegistry()

// Register adds a profile under its own name, replacing any profile of that name.
func (r *Registry) Register(n *NetworkParams) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byName[n.name]; ok && old.name == n.name {
		for i, o := range r.order {
			if o == old {
				r.order[i] = n
				break
			}
		}
	} else if !r.contains(n) {
		r.order = append(r.order, n)
	}
	r.byName[n.name] = n
}

// Alias makes n available under an additional name.
func (r *Registry) Alias(name string, n *NetworkParams) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.contains(n) {
		r.order = append(r.order, n)
	}
	r.byName[name] = n
}

func (r *Registry) contains(n *NetworkParams) bool {
	for _, o := range r.order {
		if o == n {
			return true
		}
	}
	return false
}

// Get looks up a profile by name. Unknown names are an error, never a default.
func (r *Registry) Get(name string) (*NetworkParams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byName[name]
	if !ok {
		return nil, NewErr(UnknownNetwork, "%s is not a valid network", name)
	}
	return n, nil
}

// Names returns the registered names in registration order, each profile
// followed by its aliases.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := []string{}
	for _, n := range r.order {
		names = append(names, n.name)
		aliases := []string{}
		for name, alias := range r.byName {
			if alias == n && name != n.name {
				aliases = append(aliases, name)
			}
		}
		sort.Strings(aliases)
		names = append(names, aliases...)
	}
	return names
}

// ByBip32Version resolves an extended key version to its network and kind.
func (r *Registry) ByBip32Version(version uint32) (*NetworkParams, KeyKind, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.order {
		switch version {
		case n.bip32_privkey_prefix:
			return n, Private, nil
		case n.bip32_pubkey_prefix:
			return n, Public, nil
		}
	}
	return nil, Public, NewErr(ImportError, "unknown extended key version %08x", version)
}

// ByPrivKeyVersion resolves a WIF version byte to its network.
func (r *Registry) ByPrivKeyVersion(version byte) (*NetworkParams, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.order {
		if n.pkey_prefix == version {
			return n, nil
		}
	}
	return nil, NewErr(InvalidWIFFormat, "unknown WIF version %02x", version)
}

// IsWIFLeadChar reports whether c starts a WIF of the given compression on any registered network.
func (r *Registry) IsWIFLeadChar(c byte, compressed bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.order {
		if strings.IndexByte(n.WIFLeadChars(compressed), c) >= 0 {
			return true
		}
	}
	return false
}
