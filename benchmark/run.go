package benchmark

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/guiltygyoza/bls-benchmark/crypto/rand"
)

// Run executes the full benchmark with the given configuration: corpus
// generation, the individual verification trials, the batch verification
// trials per configured batch size, and a human-readable report rendered to
// w. Report rendering happens strictly between trials or after all of them,
// so it never contributes to any measured duration. Any returned error is
// fatal to the run; there is no partial-results mode.
func Run(cfg *Config, w io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	log.WithField("corpusSize", cfg.CorpusSize).Info("Generating test attestations")
	genStart := time.Now()
	corpus, err := GenerateCorpus(rand.NewGenerator(), cfg.CorpusSize)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(genStart)).Info("Corpus generated")

	runner, err := NewRunner(cfg, corpus)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "BLS Signature Verification Benchmark for Ethereum Attestations")
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintf(w, "\nRunning %d individual verification trials (each %s):\n", cfg.Trials, cfg.TrialDuration)
	samples, err := runner.RunTrials()
	if err != nil {
		return err
	}
	writeSamples(w, samples, "  ")

	individual := Summarize(samples)
	fmt.Fprintln(w, "\nIndividual Verification Results:")
	writeStats(w, individual, "  ")

	for _, batchSize := range cfg.BatchSizes {
		fmt.Fprintf(w, "\nRunning %d batch verification trials (each %s, batch size %d):\n",
			cfg.Trials, cfg.TrialDuration, batchSize)
		batchSamples, err := runner.RunBatchTrials(batchSize)
		if err != nil {
			return err
		}
		writeSamples(w, batchSamples, "  ")

		st := Summarize(batchSamples)
		fmt.Fprintf(w, "\nBatch Size %d Results:\n", batchSize)
		writeStats(w, st, "  ")
		fmt.Fprintf(w, "  Speedup: %.2fx compared to individual verification\n", st.Mean/individual.Mean)
	}

	fmt.Fprintln(w, "\nIndividual verification trial results (verifications/second):")
	for i, s := range samples {
		fmt.Fprintf(w, "  Trial %d: %.2f\n", i+1, s)
	}
	return nil
}
