package hd

import (
	"strings"
	"testing"
)

func TestSHA256(t *testing.T) {
	// Double SHA-256
	// https://www.dlitz.net/crypto/shad256-test-vectors/SHAd256_Test_Vectors.txt
	// NIST test vectors (see FIPS PUB 180-2 Appendix B)
	shaDT(t, "616263", "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358")
	shaDT(t, "6162636462636465636465666465666765666768666768696768696a68696a6b696a6b6c6a6b6c6d6b6c6d6e6c6d6e6f6d6e6f706e6f7071", "0cffe17f68954dac3a84fb1458bd5ec99209449749b2b308b7cb55812f9563af")
	// NIST SHA-256 Test Vectors Short:
	sha2T(t, "74cb9381d89f5aa73368", "73d6fad1caaa75b43b21733561fd3958bdc555194a037c2addec19dc2d7a52bd")
	sha2T(t, "76ed24a0f40a41221ebfcf", "044cef802901932e46dc46b2545e6c99c0fc323a0ed99b081bda4216857f38ac")
	sha2T(t, "9baf69cba317f422fe26a9a0", "fe56287cd657e4afc50dba7a3a54c2a6324b886becdcd1fae473b769e551a09b")
}

func shaDT(t *testing.T, hex string, dbl_sha string) {
	if res := HexEncode(DoubleSha256(hx2b(hex))); res != dbl_sha {
		t.Errorf("DoubleSha256: wrong hash: %s vs %s", res, dbl_sha)
	}
}

func sha2T(t *testing.T, hex string, sha string) {
	if res := HexEncode(Sha256(hx2b(hex))); res != sha {
		t.Errorf("Sha256: wrong hash: %s vs %s", res, sha)
	}
}

func TestRIPEMD160(t *testing.T) {
	// https://homes.esat.kuleuven.be/~bosselae/ripemd160.html
	ripemdT(t, "", "9c1185a5c5e9fc54612808977ee8f548b2258d31")
	ripemdT(t, "a", "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe")
	ripemdT(t, "abc", "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc")
	ripemdT(t, "message digest", "5d0689ef49d2fae572b881b123a85ffa21595f36")
	ripemdT(t, "abcdefghijklmnopqrstuvwxyz", "f71c27109c692c1b56bbdceb5b9d2865b3708dbc")
	ripemdT(t, strings.Repeat("1234567890", 8), "9b752e45573d4b39f4dbd3323cab82bf63326bfb")
}

func ripemdT(t *testing.T, msg string, hash string) {
	res := HexEncode(RIPEMD160([]byte(msg)))
	if res != hash {
		t.Errorf("RIPEMD160: %s hashed to %s instead of %s", msg, res, hash)
	}
}

func TestHash160(t *testing.T) {
	pub := hx2b("0339a36013301597daef41fbe593a02cc513d0b55527ec2df1050e2e8ff49c85c2")
	if res := HexEncode(Hash160(pub)); res != "3442193e1bb70916e914552172cd4e2dbc9df811" {
		t.Errorf("Hash160: wrong hash: %s", res)
	}
}

func TestHmacSha512(t *testing.T) {
	// RFC 4231 test case 2
	res := HexEncode(HmacSha512([]byte("Jefe"), []byte("what do ya want for nothing?")))
	if res != "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737" {
		t.Errorf("HmacSha512: wrong mac: %s", res)
	}
}
