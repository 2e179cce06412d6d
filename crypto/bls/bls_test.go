package bls_test

import (
	"bytes"
	"testing"

	"github.com/guiltygyoza/bls-benchmark/crypto/bls"
	"github.com/guiltygyoza/bls-benchmark/crypto/bls/common"
	"github.com/guiltygyoza/bls-benchmark/testing/assert"
	"github.com/guiltygyoza/bls-benchmark/testing/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()
	msg := []byte("hello")
	sig := priv.Sign(msg)
	if !sig.Verify(pub, msg) {
		t.Error("Signature did not verify")
	}
}

func TestSignVerify_WrongMessage(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("hello"))
	if sig.Verify(priv.PublicKey(), []byte("world")) {
		t.Error("Signature verified against a different message")
	}
}

func TestSecretKeyFromSeed_Deterministic(t *testing.T) {
	seed := [common.SeedLength]byte{1, 2, 3, 4}
	sk1, err := bls.SecretKeyFromSeed(seed)
	require.NoError(t, err)
	sk2, err := bls.SecretKeyFromSeed(seed)
	require.NoError(t, err)
	if !bytes.Equal(sk1.Marshal(), sk2.Marshal()) {
		t.Errorf("Keys not equal, received %#x == %#x", sk1.Marshal(), sk2.Marshal())
	}
	assert.Equal(t, true, sk1.PublicKey().Equals(sk2.PublicKey()))
}

func TestSecretKeyFromSeed_DistinctSeeds(t *testing.T) {
	sk1, err := bls.SecretKeyFromSeed([common.SeedLength]byte{1})
	require.NoError(t, err)
	sk2, err := bls.SecretKeyFromSeed([common.SeedLength]byte{2})
	require.NoError(t, err)
	assert.Equal(t, false, sk1.PublicKey().Equals(sk2.PublicKey()))
}

func TestSecretKeyFromSeed_RejectsZeroSeed(t *testing.T) {
	// An all-zero seed reduces to the zero scalar, which is not a valid key.
	_, err := bls.SecretKeyFromSeed([common.SeedLength]byte{})
	require.ErrorIs(t, err, common.ErrZeroKey)
}

func TestSecretKeyFromBytes_RoundTrip(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	priv2, err := bls.SecretKeyFromBytes(priv.Marshal())
	require.NoError(t, err)
	assert.DeepEqual(t, priv.Marshal(), priv2.Marshal())
}

func TestSecretKeyFromBytes_BadLength(t *testing.T) {
	_, err := bls.SecretKeyFromBytes(make([]byte, 31))
	require.ErrorContains(t, "secret key must be 32 bytes", err)
}

func TestPublicKeyFromBytes_RoundTrip(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	pub := priv.PublicKey()

	// Twice, so the second lookup exercises the pubkey cache.
	for i := 0; i < 2; i++ {
		pub2, err := bls.PublicKeyFromBytes(pub.Marshal())
		require.NoError(t, err)
		assert.Equal(t, true, pub.Equals(pub2), "round %d", i)
	}
}

func TestPublicKeyFromBytes_RejectsInfinity(t *testing.T) {
	_, err := bls.PublicKeyFromBytes(common.InfinitePublicKey[:])
	if err == nil {
		t.Fatal("expected infinite public key to be rejected")
	}
}

func TestSignatureFromBytes_RoundTrip(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	msg := []byte("some msg")
	sig := priv.Sign(msg)

	sig2, err := bls.SignatureFromBytes(sig.Marshal())
	require.NoError(t, err)
	assert.Equal(t, true, sig2.Verify(priv.PublicKey(), msg))
}

func TestSignatureCopy_Independent(t *testing.T) {
	priv, err := bls.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("msg"))
	cp := sig.Copy()
	assert.DeepEqual(t, sig.Marshal(), cp.Marshal())
}
