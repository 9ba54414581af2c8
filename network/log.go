package network

import (
	"sync"

	"github.com/qrouting/qrsim/qrlog"
	"github.com/sirupsen/logrus"
)

var (
	defaultLoggerOnce sync.Once
	defaultLoggerInst *logrus.Logger
)

// defaultLogger lazily constructs the package-wide fallback logger used by
// any Graph not given WithLogger explicitly. Built once per process.
func defaultLogger() *logrus.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLoggerInst = qrlog.New()
	})
	return defaultLoggerInst
}
