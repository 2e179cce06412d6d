package benchmark

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "benchmark")
