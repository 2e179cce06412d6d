package benchmark

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/guiltygyoza/bls-benchmark/crypto/rand"
	"github.com/guiltygyoza/bls-benchmark/testing/assert"
	"github.com/guiltygyoza/bls-benchmark/testing/require"
)

func TestRun_EndToEnd(t *testing.T) {
	cfg := &Config{
		CorpusSize:    5,
		Trials:        1,
		TrialDuration: 200 * time.Millisecond,
		BatchSizes:    []int{2},
	}

	var buf bytes.Buffer
	start := time.Now()
	err := Run(cfg, &buf)
	elapsed := time.Since(start)
	require.NoError(t, err)

	// The trial must terminate shortly after its nominal deadline: the loop
	// may overrun by at most one verification's latency. A generous bound
	// still catches a loop that fails to observe the deadline at all.
	if elapsed > cfg.TrialDuration*20 {
		t.Fatalf("benchmark overran its deadline: ran for %s", elapsed)
	}

	out := buf.String()
	assert.Equal(t, true, strings.Contains(out, "BLS Signature Verification Benchmark"), "missing banner")
	assert.Equal(t, true, strings.Contains(out, "Trial 1:"), "missing per-trial line")
	assert.Equal(t, true, strings.Contains(out, "Individual Verification Results:"), "missing aggregates")
	assert.Equal(t, true, strings.Contains(out, "Batch Size 2 Results:"), "missing batch section")
	assert.Equal(t, true, strings.Contains(out, "Speedup:"), "missing speedup line")
	assert.Equal(t, true, strings.Contains(out, "Individual verification trial results"), "missing echo list")
}

func TestRun_AtLeastOneVerificationPerTrial(t *testing.T) {
	corpus, err := GenerateCorpus(rand.NewGenerator(), 5)
	require.NoError(t, err)

	cfg := &Config{CorpusSize: 5, Trials: 1, TrialDuration: 200 * time.Millisecond}
	runner, err := NewRunner(cfg, corpus)
	require.NoError(t, err)

	samples, err := runner.RunTrials()
	require.NoError(t, err)
	require.Equal(t, 1, len(samples))
	if samples[0] <= 0 {
		t.Fatalf("expected at least one verification in %s, got throughput %f", cfg.TrialDuration, samples[0])
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	cfg := &Config{CorpusSize: 0, Trials: 1, TrialDuration: time.Second}
	var buf bytes.Buffer
	err := Run(cfg, &buf)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, 0, buf.Len(), "no report should be rendered on config error")
}
