// Package bls implements a go-wrapper around a library implementing the
// BLS12-381 curve and the signature scheme used to authenticate consensus
// messages. This package exposes a public API for deriving keys and for
// signing and verifying messages.
package bls

import (
	"github.com/guiltygyoza/bls-benchmark/crypto/bls/common"
	"github.com/guiltygyoza/bls-benchmark/crypto/bls/herumi"
)

// SecretKeyFromBytes creates a BLS private key from a byte slice.
func SecretKeyFromBytes(privKey []byte) (SecretKey, error) {
	return herumi.SecretKeyFromBytes(privKey)
}

// SecretKeyFromSeed derives a BLS private key from 32 bytes of input keying
// material. Derivation is deterministic: the same seed always yields the
// same key.
func SecretKeyFromSeed(seed [common.SeedLength]byte) (SecretKey, error) {
	return herumi.SecretKeyFromSeed(seed)
}

// PublicKeyFromBytes creates a BLS public key from a byte slice.
func PublicKeyFromBytes(pubKey []byte) (PublicKey, error) {
	return herumi.PublicKeyFromBytes(pubKey)
}

// SignatureFromBytes creates a BLS signature from a byte slice.
func SignatureFromBytes(sig []byte) (Signature, error) {
	return herumi.SignatureFromBytes(sig)
}

// RandKey creates a new private key using fresh input keying material.
func RandKey() (common.SecretKey, error) {
	return herumi.RandKey()
}

// SecretKey represents a BLS secret or private key.
type SecretKey = common.SecretKey

// PublicKey represents a BLS public key.
type PublicKey = common.PublicKey

// Signature represents a BLS signature.
type Signature = common.Signature
