package common

// ZeroSecretKey represents a zero secret key.
var ZeroSecretKey = [32]byte{}

// InfinitePublicKey represents an infinite public key (G1 Point at Infinity).
var InfinitePublicKey = [48]byte{0xC0}

// InfiniteSignature represents an infinite signature (G2 Point at Infinity).
var InfiniteSignature = [96]byte{0xC0}

// BLS12-381 serialized lengths, in bytes.
const (
	// SecretKeyLength is the expected length of a serialized secret key.
	SecretKeyLength = 32
	// PublicKeyLength is the expected length of a compressed public key.
	PublicKeyLength = 48
	// SignatureLength is the expected length of a compressed signature.
	SignatureLength = 96
	// SeedLength is the expected length of the input keying material for key generation.
	SeedLength = 32
)
