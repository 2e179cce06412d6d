package benchmark

import (
	"time"

	"github.com/pkg/errors"
)

// Default benchmark parameters.
const (
	// DefaultCorpusSize is the number of pre-signed attestations to generate.
	DefaultCorpusSize = 100
	// DefaultTrials is the number of independent measurement trials.
	DefaultTrials = 3
	// DefaultTrialDuration is the wall-clock length of a single trial.
	DefaultTrialDuration = 5 * time.Second
)

// DefaultBatchSizes are the batch sizes exercised by the batch verification
// benchmark.
var DefaultBatchSizes = []int{1, 10, 50, 100}

// Config holds the benchmark parameters. The zero value is not usable;
// start from DefaultConfig and override as needed.
type Config struct {
	// CorpusSize is the number of pre-signed attestations to generate.
	CorpusSize int
	// Trials is the number of independent measurement trials per benchmark.
	Trials int
	// TrialDuration is the wall-clock length of a single trial.
	TrialDuration time.Duration
	// BatchSizes are the batch sizes to exercise in the batch verification
	// benchmark. Empty disables the batch benchmark.
	BatchSizes []int
}

// DefaultConfig returns the documented default benchmark configuration.
func DefaultConfig() *Config {
	return &Config{
		CorpusSize:    DefaultCorpusSize,
		Trials:        DefaultTrials,
		TrialDuration: DefaultTrialDuration,
		BatchSizes:    DefaultBatchSizes,
	}
}

func (c *Config) validate() error {
	if c.CorpusSize < 1 {
		return errors.Wrap(ErrInvalidConfig, "corpus size must be at least 1")
	}
	if c.Trials < 1 {
		return errors.Wrap(ErrInvalidConfig, "trial count must be at least 1")
	}
	if c.TrialDuration <= 0 {
		return errors.Wrap(ErrInvalidConfig, "trial duration must be positive")
	}
	for _, size := range c.BatchSizes {
		if size < 1 {
			return errors.Wrapf(ErrInvalidConfig, "batch size %d must be at least 1", size)
		}
	}
	return nil
}
