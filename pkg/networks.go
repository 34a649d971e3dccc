package moneytree

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dogecoinfoundation/moneytree/pkg/hd"
)

// RegisterNetworks adds the profiles named in conf to r. Any invalid
// profile is an error and nothing after it is registered.
func RegisterNetworks(conf Config, r *hd.Registry) error {
	names := make([]string, 0, len(conf.Networks))
	for name := range conf.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		params, err := conf.Networks[name].Params(name)
		if err != nil {
			return err
		}
		r.Register(params)
	}
	return nil
}

// Params validates the profile and converts it to network parameters.
func (n NetworkConfig) Params(name string) (*hd.NetworkParams, error) {
	spec := hd.NetworkSpec{
		Name:                 name,
		CompressedWIFChars:   n.CompressedWIFChars,
		UncompressedWIFChars: n.UncompressedWIFChars,
	}
	var err error
	if spec.AddressVersion, err = versionByte(name, "AddressVersion", n.AddressVersion); err != nil {
		return nil, err
	}
	if spec.P2SHVersion, err = versionByte(name, "P2SHVersion", n.P2SHVersion); err != nil {
		return nil, err
	}
	if spec.PrivKeyVersion, err = versionByte(name, "PrivKeyVersion", n.PrivKeyVersion); err != nil {
		return nil, err
	}
	if spec.Bip32PrivVersion, err = version32(name, "Bip32PrivVersion", n.Bip32PrivVersion); err != nil {
		return nil, err
	}
	if spec.Bip32PubVersion, err = version32(name, "Bip32PubVersion", n.Bip32PubVersion); err != nil {
		return nil, err
	}
	return hd.NewNetworkParams(spec)
}

func versionBytes(network, field, value string, size int) ([]byte, error) {
	b, err := hd.HexDecode(strings.TrimPrefix(value, "0x"))
	if err != nil || len(b) != size {
		return nil, fmt.Errorf("network %s: %s must be %d hex-encoded bytes, got %q", network, field, size, value)
	}
	return b, nil
}

func versionByte(network, field, value string) (byte, error) {
	b, err := versionBytes(network, field, value, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func version32(network, field, value string) (uint32, error) {
	b, err := versionBytes(network, field, value, 4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}
