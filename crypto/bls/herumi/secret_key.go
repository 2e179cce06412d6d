package herumi

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"

	"github.com/guiltygyoza/bls-benchmark/crypto/bls/common"
	"github.com/guiltygyoza/bls-benchmark/crypto/rand"
)

// bls12SecretKey used in the BLS signature scheme.
type bls12SecretKey struct {
	p *bls.SecretKey
}

// RandKey creates a new private key using fresh input keying material.
func RandKey() (common.SecretKey, error) {
	var seed [common.SeedLength]byte
	if _, err := rand.NewGenerator().Read(seed[:]); err != nil {
		return nil, err
	}
	return SecretKeyFromSeed(seed)
}

// SecretKeyFromSeed derives a BLS private key from 32 bytes of input keying
// material. The seed is interpreted little-endian and reduced modulo the
// curve order; the zero key is rejected.
func SecretKeyFromSeed(seed [common.SeedLength]byte) (common.SecretKey, error) {
	secKey := &bls.SecretKey{}
	if err := secKey.SetLittleEndianMod(seed[:]); err != nil {
		return nil, errors.Wrap(err, "could not derive secret key from seed")
	}
	if secKey.IsZero() {
		return nil, common.ErrZeroKey
	}
	return &bls12SecretKey{p: secKey}, nil
}

// SecretKeyFromBytes creates a BLS private key from a byte slice.
func SecretKeyFromBytes(privKey []byte) (common.SecretKey, error) {
	if len(privKey) != common.SecretKeyLength {
		return nil, fmt.Errorf("secret key must be %d bytes", common.SecretKeyLength)
	}
	secKey := &bls.SecretKey{}
	if err := secKey.Deserialize(privKey); err != nil {
		return nil, common.ErrSecretUnmarshal
	}
	if secKey.IsZero() {
		return nil, common.ErrZeroKey
	}
	return &bls12SecretKey{p: secKey}, nil
}

// PublicKey obtains the public key corresponding to the BLS secret key.
func (s *bls12SecretKey) PublicKey() common.PublicKey {
	return &PublicKey{p: s.p.GetPublicKey()}
}

// Sign a message using a secret key.
func (s *bls12SecretKey) Sign(msg []byte) common.Signature {
	return &Signature{s: s.p.SignByte(msg)}
}

// Marshal a secret key into a byte slice.
func (s *bls12SecretKey) Marshal() []byte {
	return s.p.Serialize()
}
