package hd

// https://en.bitcoin.it/wiki/Wallet_import_format

const wifCompressionFlag = 0x01

// WIF encodes the key as version || scalar [|| 0x01 if compressed], Base58Check.
func (k *PrivateKey) WIF(compressed bool, chain *NetworkParams) string {
	data := [1 + 32 + 1]byte{}
	data[0] = chain.pkey_prefix
	if copy(data[1:], k.Bytes()) != PrivKeyLen {
		panic("WIF: wrong key length")
	}
	if compressed {
		data[33] = wifCompressionFlag // pubkey will be compressed.
		return Base58EncodeCheck(data[0:34])
	}
	return Base58EncodeCheck(data[0:33])
}

// DecodeWIF decodes a WIF key against the built-in network profiles.
func DecodeWIF(str string) (key *PrivateKey, chain *NetworkParams, compressed bool, err error) {
	return Networks.DecodeWIF(str)
}

// DecodeWIF decodes a WIF key, resolving its network from the version byte.
func (r *Registry) DecodeWIF(str string) (key *PrivateKey, chain *NetworkParams, compressed bool, err error) {
	data, err := Base58DecodeCheck(str)
	if err != nil {
		return nil, nil, false, NewErr(InvalidWIFFormat, "DecodeWIF: %v", err)
	}
	switch {
	case len(data) == 34 && data[33] == wifCompressionFlag:
		compressed = true
	case len(data) == 33:
		compressed = false
	default:
		return nil, nil, false, NewErr(InvalidWIFFormat, "DecodeWIF: wrong payload length %d", len(data))
	}
	chain, err = r.ByPrivKeyVersion(data[0])
	if err != nil {
		return nil, nil, false, err
	}
	key, err = NewPrivateKeyFromBytes(data[1:33])
	if err != nil {
		return nil, nil, false, err
	}
	return key, chain, compressed, nil
}
