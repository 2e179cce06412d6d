package herumi

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"

	"github.com/guiltygyoza/bls-benchmark/crypto/bls/common"
)

var maxKeys = int64(100000)
var pubkeyCache, _ = ristretto.NewCache(&ristretto.Config{
	NumCounters: maxKeys,
	MaxCost:     1 << 22, // ~4mb is cache max size
	BufferItems: 64,
})

// PublicKey used in the BLS signature scheme.
type PublicKey struct {
	p *bls.PublicKey
}

// PublicKeyFromBytes creates a BLS public key from a byte slice.
func PublicKeyFromBytes(pubKey []byte) (common.PublicKey, error) {
	if len(pubKey) != common.PublicKeyLength {
		return nil, fmt.Errorf("public key must be %d bytes", common.PublicKeyLength)
	}
	if cv, ok := pubkeyCache.Get(string(pubKey)); ok {
		return cv.(*PublicKey).Copy(), nil
	}
	p := &bls.PublicKey{}
	if err := p.Deserialize(pubKey); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into public key")
	}
	pubKeyObj := &PublicKey{p: p}
	if pubKeyObj.IsInfinite() {
		return nil, common.ErrInfinitePubKey
	}
	pubkeyCache.Set(string(pubKey), pubKeyObj.Copy(), 48)
	return pubKeyObj, nil
}

// Marshal a public key into a byte slice.
func (p *PublicKey) Marshal() []byte {
	return p.p.Serialize()
}

// Copy the public key to a new pointer reference.
func (p *PublicKey) Copy() common.PublicKey {
	np := *p.p
	return &PublicKey{p: &np}
}

// Equals checks if the provided public key is equal to this one.
func (p *PublicKey) Equals(p2 common.PublicKey) bool {
	return p.p.IsEqual(p2.(*PublicKey).p)
}

// IsInfinite checks if the public key is the point at infinity.
func (p *PublicKey) IsInfinite() bool {
	return p.p.IsZero()
}
