package hd

import (
	"bytes"
	"testing"
)

func TestWIF(t *testing.T) {
	pkey := hx2b("0C28FCA386C7A227600B2FE50B7CAE11EC86D3BF1FBE471BE89827E19D72AA1D")
	key, err := NewPrivateKeyFromBytes(pkey)
	if err != nil {
		t.Fatalf("NewPrivateKeyFromBytes: %v", err)
	}
	wif := key.WIF(true, Dogecoin)
	if wif != "QP2GKa5kuU2i2G3xJMH5KL9NErbVYGxMoRiF5trrJJvHzrJ2Ebp7" {
		t.Fatalf("WIF failed: %v", wif)
	}
	dec, chain, compressed, err := DecodeWIF("QP2GKa5kuU2i2G3xJMH5KL9NErbVYGxMoRiF5trrJJvHzrJ2Ebp7")
	if err != nil {
		t.Fatalf("DecodeWIF: decode failed: %v", err)
	}
	if chain != Dogecoin {
		t.Fatalf("DecodeWIF: wrong chain %s", chain.Name())
	}
	if !compressed {
		t.Fatalf("DecodeWIF: expected a compressed WIF")
	}
	if !bytes.Equal(dec.Bytes(), pkey) {
		t.Fatalf("DecodeWIF: decoded bytes differ: %v vs %v", dec.Bytes(), pkey)
	}
}

func TestWIFUncompressed(t *testing.T) {
	// https://en.bitcoin.it/wiki/Wallet_import_format
	key, chain, compressed, err := DecodeWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ")
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	if chain != Bitcoin || compressed {
		t.Fatalf("DecodeWIF: wrong chain or compression: %s %v", chain.Name(), compressed)
	}
	if key.Hex() != "0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d" {
		t.Fatalf("DecodeWIF: wrong key %s", key.Hex())
	}
	if key.WIF(false, Bitcoin) != "5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ" {
		t.Fatalf("WIF: did not round-trip")
	}
	if _, _, _, err := DecodeWIF("5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTBADTJ"); !IsError(err, InvalidWIFFormat) {
		t.Fatalf("DecodeWIF: expected InvalidWIFFormat, got %v", err)
	}
}

func TestWIFTestnet(t *testing.T) {
	wif := "cRhes8SBnsF6WizphaRKQKZZfDniDa9Bxcw31yKeEC1KDExhxFgD"
	key, chain, compressed, err := DecodeWIF(wif)
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	if chain != BitcoinTestnet || !compressed {
		t.Fatalf("DecodeWIF: wrong chain or compression: %s %v", chain.Name(), compressed)
	}
	if key.Hex() != "7aed0be7fa67ba25d2cae7d2955bff9f56f5455312a76862c5bcde310bcfba0d" {
		t.Fatalf("DecodeWIF: wrong key %s", key.Hex())
	}
	if key.WIF(true, BitcoinTestnet) != wif {
		t.Fatalf("WIF: testnet key did not round-trip")
	}
}

func TestWIFUnknownVersion(t *testing.T) {
	data := append([]byte{0x42}, hx2b(testKeyHex)...)
	if _, _, _, err := DecodeWIF(Base58EncodeCheck(data)); !IsError(err, InvalidWIFFormat) {
		t.Fatalf("DecodeWIF: expected InvalidWIFFormat, got %v", err)
	}
	data = append(data, 0x02)
	if _, _, _, err := DecodeWIF(Base58EncodeCheck(data)); !IsError(err, InvalidWIFFormat) {
		t.Fatalf("DecodeWIF: expected InvalidWIFFormat for a bad flag, got %v", err)
	}
}
