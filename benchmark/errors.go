package benchmark

import "github.com/pkg/errors"

// ErrGeneration indicates that the cryptographic backend rejected key
// derivation or signing while the corpus was being built. Fatal: the run
// aborts before any trial executes and is never retried.
var ErrGeneration = errors.New("corpus generation failed")

// ErrIntegrity indicates that a verification which must succeed returned
// false. Corpus entries are self-consistent by construction, so this signals
// a corrupted corpus or a broken cryptographic backend. Fatal: the current
// trial aborts and the failure is never counted toward throughput.
var ErrIntegrity = errors.New("signature verification integrity failure")

// ErrInvalidConfig indicates invalid benchmark parameters. Reported
// synchronously, before any work begins.
var ErrInvalidConfig = errors.New("invalid benchmark configuration")
