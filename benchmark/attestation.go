// Package benchmark implements a fixed-duration throughput harness for BLS
// signature verification over synthetic Ethereum-style attestation records.
// A pre-signed corpus is generated once, then re-verified round-robin for a
// configured wall-clock duration across several independent trials, and the
// resulting throughput samples are aggregated into summary statistics.
package benchmark

import "encoding/binary"

// RootLength is the byte length of every digest field carried by an
// attestation record.
const RootLength = 32

// EncodedLength is the fixed length of a marshaled attestation record.
const EncodedLength = 8 + 8 + RootLength + 8 + RootLength + 8 + RootLength

// AttestationData is a synthetic consensus vote. Values are immutable once
// generated and safe for concurrent reads.
type AttestationData struct {
	Slot            uint64
	CommitteeIndex  uint64
	BeaconBlockRoot [RootLength]byte
	SourceEpoch     uint64
	SourceRoot      [RootLength]byte
	TargetEpoch     uint64
	TargetRoot      [RootLength]byte
}

// Marshal encodes the record into its canonical byte representation: each
// unsigned field as 8 little-endian bytes, each root copied verbatim, fields
// concatenated in declared order for a total of 128 bytes. Signatures are
// computed over exactly these bytes, so the encoding must be deterministic
// and injective over the field set.
func (a *AttestationData) Marshal() []byte {
	buf := make([]byte, 0, EncodedLength)
	buf = binary.LittleEndian.AppendUint64(buf, a.Slot)
	buf = binary.LittleEndian.AppendUint64(buf, a.CommitteeIndex)
	buf = append(buf, a.BeaconBlockRoot[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, a.SourceEpoch)
	buf = append(buf, a.SourceRoot[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, a.TargetEpoch)
	buf = append(buf, a.TargetRoot[:]...)
	return buf
}
