package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dogecoinfoundation/moneytree/pkg/hd"
	"github.com/spf13/cobra"
)

/*
	These commands are thin wrappers over pkg/hd. Every command prints
	JSON on stdout; errors go to stderr with exit status 1.
*/

// NodeInfo is the printed form of a tree node.
type NodeInfo struct {
	Path              string     `json:"path,omitempty"`
	Network           string     `json:"network"`
	Depth             uint8      `json:"depth"`
	Index             int64      `json:"index"`
	Hardened          bool       `json:"hardened"`
	ParentFingerprint string     `json:"parent_fingerprint"`
	Fingerprint       string     `json:"fingerprint"`
	Identifier        string     `json:"identifier"`
	ChainCode         string     `json:"chain_code"`
	PublicKey         string     `json:"public_key"`
	Address           hd.Address `json:"address"`
	XPub              string     `json:"xpub"`
	XPrv              string     `json:"xprv,omitempty"`
	WIF               string     `json:"wif,omitempty"`
}

func newNodeInfo(node *hd.Node, chain *hd.NetworkParams) (NodeInfo, error) {
	parent := node.ParentFingerprint()
	fp := node.Fingerprint()
	info := NodeInfo{
		Network:           chain.Name(),
		Depth:             node.Depth(),
		Index:             node.Index(),
		Hardened:          node.IsHardened(),
		ParentFingerprint: hd.HexEncode(parent[:]),
		Fingerprint:       hd.HexEncode(fp[:]),
		Identifier:        hd.HexEncode(node.Identifier()),
		ChainCode:         node.ChainCodeHex(),
		PublicKey:         node.PublicKey().Hex(),
		Address:           node.Address(chain),
	}
	var err error
	if info.XPub, err = node.EncodeBip32(hd.Public, chain); err != nil {
		return info, err
	}
	if priv, ok := node.PrivateKey(); ok {
		if info.XPrv, err = node.EncodeBip32(hd.Private, chain); err != nil {
			return info, err
		}
		info.WIF = priv.WIF(true, chain)
	}
	return info, nil
}

// KeyInfo is the printed form of a single private key.
type KeyInfo struct {
	Format              hd.KeyFormat `json:"format"`
	Network             string       `json:"network"`
	Hex                 string       `json:"hex"`
	Base64              string       `json:"base64"`
	WIF                 string       `json:"wif"`
	WIFUncompressed     string       `json:"wif_uncompressed"`
	PublicKey           string       `json:"public_key"`
	Address             hd.Address   `json:"address"`
	AddressUncompressed hd.Address   `json:"address_uncompressed"`
}

func (a *App) print(v any) error {
	o, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.Out, string(o))
	return err
}

func generateCommand(a *App) *cobra.Command {
	var words int
	var passphrase string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random master key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *hd.Master
			var mnemonic string
			var err error
			if words > 0 {
				if mnemonic, err = hd.GenerateMnemonic(words); err != nil {
					return fmt.Errorf("failed to generate mnemonic: %w", err)
				}
				m, err = hd.NewMasterFromMnemonic(mnemonic, passphrase)
			} else {
				m, err = hd.GenerateMaster()
			}
			if err != nil {
				return fmt.Errorf("failed to generate master: %w", err)
			}
			info, err := newNodeInfo(m.Node, a.Chain)
			if err != nil {
				return err
			}
			a.Log.Printf("generate: new master %s on %s", info.Fingerprint, a.Chain.Name())
			return a.print(struct {
				Mnemonic string `json:"mnemonic,omitempty"`
				Seed     string `json:"seed"`
				NodeInfo
			}{mnemonic, m.SeedHex(), info})
		},
	}
	cmd.Flags().IntVar(&words, "words", 0, "Generate a BIP39 mnemonic of this many words (12-24) and derive the seed from it")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP39 passphrase used with --words")
	return cmd
}

func deriveCommand(a *App) *cobra.Command {
	var seedHex, extendedKey, mnemonic, passphrase string
	cmd := &cobra.Command{
		Use:   "derive <path>",
		Short: "Derive a node from a seed or an extended key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var root *hd.Node
			chain := a.Chain
			given := 0
			for _, s := range []string{seedHex, extendedKey, mnemonic} {
				if s != "" {
					given++
				}
			}
			switch {
			case given > 1:
				return errors.New("give only one of --seed, --mnemonic or --key")
			case mnemonic != "":
				m, err := hd.NewMasterFromMnemonic(mnemonic, passphrase)
				if err != nil {
					return fmt.Errorf("failed to import mnemonic: %w", err)
				}
				root = m.Node
			case seedHex != "":
				m, err := hd.NewMasterFromSeedHex(seedHex)
				if err != nil {
					return fmt.Errorf("failed to import seed: %w", err)
				}
				root = m.Node
			case extendedKey != "":
				node, keyChain, err := a.Registry.DecodeBip32(extendedKey)
				if err != nil {
					return fmt.Errorf("failed to import key: %w", err)
				}
				root, chain = node, keyChain
			default:
				return errors.New("one of --seed, --mnemonic or --key is required")
			}
			node, err := root.DerivePath(args[0])
			if err != nil {
				return fmt.Errorf("failed to derive %s: %w", args[0], err)
			}
			info, err := newNodeInfo(node, chain)
			if err != nil {
				return err
			}
			info.Path = args[0]
			a.Log.Printf("derive: %s on %s", args[0], chain.Name())
			return a.print(info)
		},
	}
	cmd.Flags().StringVar(&seedHex, "seed", "", "Seed (hex)")
	cmd.Flags().StringVar(&extendedKey, "key", "", "Extended private or public key")
	cmd.Flags().StringVar(&mnemonic, "mnemonic", "", "BIP39 mnemonic")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP39 passphrase used with --mnemonic")
	return cmd
}

func inspectCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <extended-key>",
		Short: "Decode an extended key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, chain, err := a.Registry.DecodeBip32(args[0])
			if err != nil {
				return fmt.Errorf("failed to decode key: %w", err)
			}
			info, err := newNodeInfo(node, chain)
			if err != nil {
				return err
			}
			kind := hd.Public
			if node.IsPrivate() {
				kind = hd.Private
			}
			a.Log.Printf("inspect: %s key on %s", kind, chain.Name())
			return a.print(struct {
				Kind string `json:"kind"`
				NodeInfo
			}{kind.String(), info})
		},
	}
}

func keyCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "key <private-key>",
		Short: "Parse a private key in hex, base64 or WIF format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.Registry.DetectPrivateKeyFormat(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse key: %w", err)
			}
			priv, err := a.Registry.ParsePrivateKey(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse key: %w", err)
			}
			pub := priv.PublicKey()
			a.Log.Printf("key: %s key on %s", format, a.Chain.Name())
			return a.print(KeyInfo{
				Format:              format,
				Network:             a.Chain.Name(),
				Hex:                 priv.Hex(),
				Base64:              priv.Base64(),
				WIF:                 priv.WIF(true, a.Chain),
				WIFUncompressed:     priv.WIF(false, a.Chain),
				PublicKey:           pub.Hex(),
				Address:             pub.Address(a.Chain),
				AddressUncompressed: pub.Uncompressed().Address(a.Chain),
			})
		},
	}
}

func extractCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "extract <xprv>",
		Short: "Extract the WIF private key of an extended private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wif, err := a.Registry.ExtractWIFFromBip32(args[0])
			if err != nil {
				return fmt.Errorf("failed to extract key: %w", err)
			}
			address, err := a.Registry.AddressFromWIF(wif)
			if err != nil {
				return err
			}
			a.Log.Printf("extract: key for %s", address)
			return a.print(map[string]string{"wif": wif, "address": string(address)})
		},
	}
}

func networksCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the known network profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type network struct {
				Name             string `json:"name"`
				Profile          string `json:"profile"`
				AddressVersion   string `json:"address_version"`
				P2SHVersion      string `json:"p2sh_version"`
				PrivKeyVersion   string `json:"privkey_version"`
				Bip32PrivVersion string `json:"bip32_priv_version"`
				Bip32PubVersion  string `json:"bip32_pub_version"`
			}
			list := []network{}
			for _, name := range a.Registry.Names() {
				n, err := a.Registry.Get(name)
				if err != nil {
					return err
				}
				list = append(list, network{
					Name:             name,
					Profile:          n.Name(),
					AddressVersion:   fmt.Sprintf("%02x", n.AddressVersion()),
					P2SHVersion:      fmt.Sprintf("%02x", n.P2SHVersion()),
					PrivKeyVersion:   fmt.Sprintf("%02x", n.PrivKeyVersion()),
					Bip32PrivVersion: fmt.Sprintf("%08x", n.Bip32PrivVersion()),
					Bip32PubVersion:  fmt.Sprintf("%08x", n.Bip32PubVersion()),
				})
			}
			return a.print(list)
		},
	}
}

func showconfCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "showconf",
		Short: "Print the config state and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.print(a.Config)
		},
	}
}
