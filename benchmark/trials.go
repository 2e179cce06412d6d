package benchmark

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Runner executes fixed-duration verification trials against a shared,
// read-only corpus. Trials run strictly sequentially; the only state carried
// across them is the corpus itself.
type Runner struct {
	cfg    *Config
	corpus []CorpusEntry

	// now is the clock read polled by the measurement loops. Injectable so
	// tests can drive deadline behavior without real wall-clock waits.
	now func() time.Time
}

// NewRunner validates cfg and returns a Runner over the given corpus.
func NewRunner(cfg *Config, corpus []CorpusEntry) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, errors.Wrap(ErrInvalidConfig, "corpus is empty")
	}
	return &Runner{cfg: cfg, corpus: corpus, now: time.Now}, nil
}

// RunTrials executes the individual verification loop once per configured
// trial and converts each raw verification count into a throughput sample in
// verifications per second. Each trial starts a fresh counter. Progress
// logging happens between trials, outside any timed region.
func (r *Runner) RunTrials() ([]float64, error) {
	samples := make([]float64, 0, r.cfg.Trials)
	for i := 0; i < r.cfg.Trials; i++ {
		count, err := r.runLoop(r.cfg.TrialDuration)
		if err != nil {
			return nil, err
		}
		sample := float64(count) / r.cfg.TrialDuration.Seconds()
		log.WithFields(logrus.Fields{
			"trial":         i + 1,
			"trials":        r.cfg.Trials,
			"verifications": humanize.Comma(int64(count)),
			"perSecond":     sample,
		}).Info("Verification trial complete")
		samples = append(samples, sample)
	}
	return samples, nil
}

// RunBatchTrials is RunTrials over the batch verification loop with the
// given batch size.
func (r *Runner) RunBatchTrials(batchSize int) ([]float64, error) {
	if batchSize < 1 {
		return nil, errors.Wrapf(ErrInvalidConfig, "batch size %d must be at least 1", batchSize)
	}
	samples := make([]float64, 0, r.cfg.Trials)
	for i := 0; i < r.cfg.Trials; i++ {
		count, err := r.runBatchLoop(r.cfg.TrialDuration, batchSize)
		if err != nil {
			return nil, err
		}
		sample := float64(count) / r.cfg.TrialDuration.Seconds()
		log.WithFields(logrus.Fields{
			"trial":         i + 1,
			"trials":        r.cfg.Trials,
			"batchSize":     batchSize,
			"verifications": humanize.Comma(int64(count)),
			"perSecond":     sample,
		}).Info("Batch verification trial complete")
		samples = append(samples, sample)
	}
	return samples, nil
}
