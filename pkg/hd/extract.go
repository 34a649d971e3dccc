package hd

// ExtractWIFFromBip32 takes an extended private key and returns its key as a
// compressed WIF on the same network.
func ExtractWIFFromBip32(extendedKey string) (string, error) {
	return Networks.ExtractWIFFromBip32(extendedKey)
}

func (r *Registry) ExtractWIFFromBip32(extendedKey string) (string, error) {
	node, chain, err := r.DecodeBip32(extendedKey)
	if err != nil {
		return "", err
	}
	priv, ok := node.PrivateKey()
	if !ok {
		return "", NewErr(PrivatePublicMismatch, "ExtractWIFFromBip32: not an extended private key")
	}
	wif := priv.WIF(true, chain)
	priv.zero() // clear key for security.
	return wif, nil
}

// AddressFromWIF returns the P2PKH address for a WIF key, on the WIF's
// network and with the WIF's compression.
func AddressFromWIF(wif string) (Address, error) {
	return Networks.AddressFromWIF(wif)
}

func (r *Registry) AddressFromWIF(wif string) (Address, error) {
	priv, chain, compressed, err := r.DecodeWIF(wif)
	if err != nil {
		return "", err
	}
	pub := priv.PublicKey()
	priv.zero() // clear key for security.
	if !compressed {
		pub = pub.Uncompressed()
	}
	return pub.Address(chain), nil
}
