package herumi

import (
	"fmt"

	"github.com/herumi/bls-eth-go-binary/bls"
	"github.com/pkg/errors"

	"github.com/guiltygyoza/bls-benchmark/crypto/bls/common"
)

// Signature used in the BLS signature scheme.
type Signature struct {
	s *bls.Sign
}

// SignatureFromBytes creates a BLS signature from a byte slice.
func SignatureFromBytes(sig []byte) (common.Signature, error) {
	if len(sig) != common.SignatureLength {
		return nil, fmt.Errorf("signature must be %d bytes", common.SignatureLength)
	}
	s := &bls.Sign{}
	if err := s.Deserialize(sig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal bytes into signature")
	}
	return &Signature{s: s}, nil
}

// Verify a bls signature given a public key and a message.
//
// In the IETF draft BLS specification:
// Verify(PK, message, signature) -> VALID or INVALID: a verification
//      algorithm that outputs VALID if signature is a valid signature of
//      message under public key PK, and INVALID otherwise.
func (s *Signature) Verify(pubKey common.PublicKey, msg []byte) bool {
	return s.s.VerifyByte(pubKey.(*PublicKey).p, msg)
}

// Marshal a signature into a byte slice.
func (s *Signature) Marshal() []byte {
	return s.s.Serialize()
}

// Copy the signature to a new pointer reference.
func (s *Signature) Copy() common.Signature {
	ns := *s.s
	return &Signature{s: &ns}
}
