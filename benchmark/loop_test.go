package benchmark

import (
	"testing"
	"time"

	"github.com/guiltygyoza/bls-benchmark/crypto/rand"
	"github.com/guiltygyoza/bls-benchmark/testing/assert"
	"github.com/guiltygyoza/bls-benchmark/testing/require"
)

// fakeClock advances by a fixed step on every read, so deadline behavior is
// deterministic without real wall-clock waits.
type fakeClock struct {
	current time.Time
	step    time.Duration
}

func (c *fakeClock) now() time.Time {
	t := c.current
	c.current = c.current.Add(c.step)
	return t
}

func newTestRunner(t *testing.T, corpusSize int, step time.Duration) *Runner {
	t.Helper()
	corpus, err := GenerateCorpus(rand.NewSeededGenerator(1), corpusSize)
	require.NoError(t, err)
	runner, err := NewRunner(DefaultConfig(), corpus)
	require.NoError(t, err)
	clock := &fakeClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
	runner.now = clock.now
	return runner
}

func TestRunLoop_ZeroDurationCountsNothing(t *testing.T) {
	runner := newTestRunner(t, 1, time.Second)
	count, err := runner.runLoop(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestRunLoop_DeadlineAlreadyPassed(t *testing.T) {
	runner := newTestRunner(t, 1, time.Second)
	count, err := runner.runLoop(-time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
}

func TestRunLoop_CountsUntilDeadline(t *testing.T) {
	// The clock advances one second per read. The first read sets the
	// deadline, so a 5s duration admits checks at +1s..+4s before the
	// check at +5s fails: exactly 4 verifications.
	runner := newTestRunner(t, 3, time.Second)
	count, err := runner.runLoop(5 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
}

func TestRunLoop_IntegrityFailureIsFatal(t *testing.T) {
	runner := newTestRunner(t, 2, time.Second)
	// Cross-wire the signatures so the first verification must fail.
	runner.corpus[0].Signature, runner.corpus[1].Signature =
		runner.corpus[1].Signature, runner.corpus[0].Signature

	_, err := runner.runLoop(10 * time.Second)
	require.ErrorIs(t, err, ErrIntegrity)
	require.ErrorContains(t, "corpus index 0", err)
}

func TestRunBatchLoop_CountsWholeBatches(t *testing.T) {
	// 4 deadline polls succeed (+1s..+4s), each completing a batch of 3:
	// 12 verifications in total.
	runner := newTestRunner(t, 5, time.Second)
	count, err := runner.runBatchLoop(5*time.Second, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), count)
}

func TestRunBatchLoop_IntegrityFailureNamesEntry(t *testing.T) {
	runner := newTestRunner(t, 4, time.Second)
	runner.corpus[2].Signature = runner.corpus[3].Signature.Copy()

	_, err := runner.runBatchLoop(10*time.Second, 4)
	require.ErrorIs(t, err, ErrIntegrity)
	require.ErrorContains(t, "corpus index 2", err)
}
