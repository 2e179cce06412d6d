package benchmark

import (
	mrand "math/rand"

	"github.com/pkg/errors"

	"github.com/guiltygyoza/bls-benchmark/crypto/bls"
	"github.com/guiltygyoza/bls-benchmark/crypto/bls/common"
)

// CorpusEntry pairs an attestation record with the signature over its
// canonical encoding and the corresponding public key. Entries are
// independently keyed and independently signed; the corpus never uses
// signature aggregation. Once generated, entries are read-only and safe to
// share across readers.
type CorpusEntry struct {
	Data      AttestationData
	Signature bls.Signature
	PublicKey bls.PublicKey
}

// randomAttestation draws a pseudorandom attestation record from g. The
// randomness is cryptographically irrelevant, it only has to spread records
// apart so that corpus entries sign distinct messages.
func randomAttestation(g *mrand.Rand) AttestationData {
	a := AttestationData{
		Slot:           g.Uint64(),
		CommitteeIndex: g.Uint64(),
		SourceEpoch:    g.Uint64(),
		TargetEpoch:    g.Uint64(),
	}
	g.Read(a.BeaconBlockRoot[:])
	g.Read(a.SourceRoot[:])
	g.Read(a.TargetRoot[:])
	return a
}

// GenerateCorpus produces count pre-signed corpus entries. Each entry gets a
// fresh pseudorandom record, a fresh 32-byte key seed drawn from g, key
// material derived from that seed, and a signature over the record's
// canonical encoding. No two entries share key material. A backend rejection
// during key derivation is wrapped as ErrGeneration with the entry index and
// is fatal to the run.
func GenerateCorpus(g *mrand.Rand, count int) ([]CorpusEntry, error) {
	if count < 1 {
		return nil, errors.Wrap(ErrInvalidConfig, "corpus size must be at least 1")
	}
	corpus := make([]CorpusEntry, count)
	for i := 0; i < count; i++ {
		data := randomAttestation(g)

		var seed [common.SeedLength]byte
		if _, err := g.Read(seed[:]); err != nil {
			return nil, errors.Wrapf(ErrGeneration, "could not draw key seed for entry %d: %v", i, err)
		}
		secKey, err := bls.SecretKeyFromSeed(seed)
		if err != nil {
			return nil, errors.Wrapf(ErrGeneration, "could not derive key material for entry %d: %v", i, err)
		}

		corpus[i] = CorpusEntry{
			Data:      data,
			Signature: secKey.Sign(data.Marshal()),
			PublicKey: secKey.PublicKey(),
		}
	}
	return corpus, nil
}
