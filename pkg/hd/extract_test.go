package hd

import (
	"testing"
)

func TestExtract(t *testing.T) {
	extECT(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", "L52XzL2cMkHxqxBXRyEpnPQZGUs3uKiL3R11XbAdHigRzDozKZeW")
	extECT(t, "xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7", "L5BmPijJjrKbiUfG4zbiFKNqkvuJ8usooJmzuD7Z8dkRoTThYnAT")
	extECT(t, "xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs", "KyFAjQ5rgrKvhXvNMtFB5PCSKUYD1yyPEe3xr3T34TZSUHycXtMM")

	_, err := ExtractWIFFromBip32("xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8")
	if !IsPrivatePublicMismatch(err) {
		t.Errorf("ExtractWIFFromBip32: expected PrivatePublicMismatch for an xpub, got %v", err)
	}
}

func extECT(t *testing.T, ext_key string, ec_key string) {
	key, err := ExtractWIFFromBip32(ext_key)
	if err != nil {
		t.Errorf("ExtractWIFFromBip32: %v", err)
	}
	if key != ec_key {
		t.Errorf("ExtractWIFFromBip32: extracted EC Key doesn't match: %s vs %s", key, ec_key)
	}
}

func TestAddressFromWIF(t *testing.T) {
	addrT(t, "L52XzL2cMkHxqxBXRyEpnPQZGUs3uKiL3R11XbAdHigRzDozKZeW", "15mKKb2eos1hWa6tisdPwwDC1a5J1y9nma")
	addrT(t, testKeyWIF, "13uVqa35BMo4mYq9LiZrXVzoz9EFZ6aoXe")
	addrT(t, testKeyWIFU, "133bJA2xoVqBUsiR3uSkciMo5r15fLAaZg")
	addrT(t, "QRng61LHKZNeXJzdMjR6j2CUTyE3WrieajehdB6dJHAdYFkLLqP1", "D83bNpyiUmhMJZ1k5JZR5GAQsGxYrqqspZ")
}

func addrT(t *testing.T, wif string, expect Address) {
	addr, err := AddressFromWIF(wif)
	if err != nil {
		t.Errorf("AddressFromWIF: %v", err)
	}
	if addr != expect {
		t.Errorf("AddressFromWIF: %s gave %s instead of %s", wif, addr, expect)
	}
}
