package hd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMaster(t *testing.T) {
	seed := hx2b("000102030405060708090a0b0c0d0e0f")
	m, err := NewMaster(seed)
	require.NoError(t, err)
	require.Equal(t, uint8(0), m.Depth())
	require.Equal(t, int64(0), m.Index())
	require.Equal(t, [4]byte{}, m.ParentFingerprint())
	require.Equal(t, "000102030405060708090a0b0c0d0e0f", m.SeedHex())
	require.Equal(t, seed, m.Seed())

	// the master keeps its own copy of the seed.
	seed[0] = 0xff
	require.Equal(t, "000102030405060708090a0b0c0d0e0f", m.SeedHex())
}

func TestNewMasterErrors(t *testing.T) {
	_, err := NewMaster(make([]byte, MinSeedSize-1))
	require.True(t, IsError(err, ImportError), "%v", err)
	_, err = NewMaster(make([]byte, MaxSeedSize+1))
	require.True(t, IsError(err, ImportError), "%v", err)
	_, err = NewMasterFromSeedHex("not hex")
	require.True(t, IsError(err, ImportError), "%v", err)
}

func TestGenerateMaster(t *testing.T) {
	a, err := GenerateMaster()
	require.NoError(t, err)
	b, err := GenerateMaster()
	require.NoError(t, err)
	require.Len(t, a.Seed(), RandomSeedSize)
	require.False(t, bytes.Equal(a.Seed(), b.Seed()))
	require.True(t, a.IsPrivate())

	// the seed reproduces the master.
	again, err := NewMaster(a.Seed())
	require.NoError(t, err)
	x1, err := a.EncodeBip32(Private, Bitcoin)
	require.NoError(t, err)
	x2, err := again.EncodeBip32(Private, Bitcoin)
	require.NoError(t, err)
	require.Equal(t, x1, x2)
}

func TestMasterFromKeys(t *testing.T) {
	chainCode := hx2b("60499f801b896d83179a4374aeb7822aaeaceaa0db1f85ee3e904c4defbd9689")
	priv, err := ParsePrivateKey("4b03d6fc340455b363f51020ad3ecca4f0850280cf436c70c727923f6db46c3e")
	require.NoError(t, err)
	m, err := NewMasterFromPrivateKey(priv, chainCode)
	require.NoError(t, err)
	require.Empty(t, m.Seed())
	require.Equal(t, "", m.SeedHex())
	xprv, err := m.EncodeBip32(Private, Bitcoin)
	require.NoError(t, err)
	require.Equal(t, "xprv9s21ZrQH143K31xYSDQpPDxsXRTUcvj2iNHm5NUtrGiGG5e2DtALGdso3pGz6ssrdK4PFmM8NSpSBHNqPqm55Qn3LqFtT2emdEXVYsCzC2U", xprv)

	pub, err := ParsePublicKey("03cbcaa9c98c877a26977d00825c956a238e8dddfbd322cce4f74b0b5bd6ace4a7")
	require.NoError(t, err)
	pm, err := NewMasterFromPublicKey(pub, chainCode)
	require.NoError(t, err)
	require.False(t, pm.IsPrivate())
	node, err := pm.DerivePath("M/0")
	require.NoError(t, err)
	require.Equal(t, Address("19EuDJdgfRkwCmRzbzVBHZWQG9QNWhftbZ"), node.Address(Bitcoin))
	_, err = pm.EncodeBip32(Private, Bitcoin)
	require.True(t, IsPrivatePublicMismatch(err), "%v", err)

	_, err = NewMasterFromPrivateKey(priv, chainCode[:31])
	require.True(t, IsError(err, ImportError), "%v", err)
	_, err = NewMasterFromPublicKey(pub, nil)
	require.True(t, IsError(err, ImportError), "%v", err)
}
