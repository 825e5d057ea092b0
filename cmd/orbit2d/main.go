package main

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

func main() {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Log("level", "critical", "subsys", "cli", "err", err)
		os.Exit(1)
	}
}
