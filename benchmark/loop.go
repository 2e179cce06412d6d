package benchmark

import (
	"time"

	"github.com/pkg/errors"
)

// runLoop re-verifies corpus entries round-robin until the deadline passes
// and returns the number of completed verifications. The deadline is polled
// before each verification, never after, so the loop does not start new work
// past the deadline but may overrun it by at most one verification's latency;
// a unit of work once started is never cancelled mid-flight. The loop
// busy-spins on purpose: the poll is a clock read, not a blocking wait, and
// sleeps or yields in the hot path would depress the measured throughput.
func (r *Runner) runLoop(duration time.Duration) (uint64, error) {
	deadline := r.now().Add(duration)
	size := uint64(len(r.corpus))
	var count uint64
	for r.now().Before(deadline) {
		idx := count % size
		entry := &r.corpus[idx]
		msg := entry.Data.Marshal()
		if !entry.Signature.Verify(entry.PublicKey, msg) {
			return 0, errors.Wrapf(ErrIntegrity, "corpus index %d", idx)
		}
		count++
	}
	return count, nil
}

// runBatchLoop verifies batchSize consecutive corpus entries per iteration,
// polling the deadline once per batch rather than once per verification.
// Entries are still verified one at a time; there is no signature
// aggregation. Returns the total number of completed verifications.
func (r *Runner) runBatchLoop(duration time.Duration, batchSize int) (uint64, error) {
	deadline := r.now().Add(duration)
	size := uint64(len(r.corpus))
	var count uint64
	for r.now().Before(deadline) {
		start := count % size
		for i := uint64(0); i < uint64(batchSize); i++ {
			idx := (start + i) % size
			entry := &r.corpus[idx]
			if !entry.Signature.Verify(entry.PublicKey, entry.Data.Marshal()) {
				return 0, errors.Wrapf(ErrIntegrity, "corpus index %d", idx)
			}
		}
		count += uint64(batchSize)
	}
	return count, nil
}
