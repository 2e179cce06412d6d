// The benchmark command measures sustained BLS12-381 signature verification
// throughput over a corpus of synthetic Ethereum-style attestations and
// prints per-trial results with aggregate statistics.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/guiltygyoza/bls-benchmark/benchmark"
	"github.com/guiltygyoza/bls-benchmark/runtime/version"
)

func main() {
	customFormatter := new(prefixed.TextFormatter)
	customFormatter.TimestampFormat = "2006-01-02 15:04:05"
	customFormatter.FullTimestamp = true
	log.SetFormatter(customFormatter)

	app := cli.App{}
	app.Name = "bls-benchmark"
	app.Usage = "Measures sustained BLS signature verification throughput for consensus attestations"
	app.Version = version.GetVersion()
	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "corpus-size",
			Usage: "Number of pre-signed attestations to generate",
			Value: benchmark.DefaultCorpusSize,
		},
		&cli.IntFlag{
			Name:  "trials",
			Usage: "Number of measurement trials per benchmark",
			Value: benchmark.DefaultTrials,
		},
		&cli.DurationFlag{
			Name:  "trial-duration",
			Usage: "Wall-clock duration of a single trial",
			Value: benchmark.DefaultTrialDuration,
		},
		&cli.IntSliceFlag{
			Name:  "batch-sizes",
			Usage: "Batch sizes to exercise in the batch verification benchmark",
			Value: cli.NewIntSlice(benchmark.DefaultBatchSizes...),
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg := benchmark.DefaultConfig()
		cfg.CorpusSize = c.Int("corpus-size")
		cfg.Trials = c.Int("trials")
		cfg.TrialDuration = c.Duration("trial-duration")
		cfg.BatchSizes = c.IntSlice("batch-sizes")
		return benchmark.Run(cfg, os.Stdout)
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}
