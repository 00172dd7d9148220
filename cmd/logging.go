package cmd

import (
	"github.com/df07/go-smallpt/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("smallpt")

// setupLogging applies the configured level, then lets -v/-vv raise it
func setupLogging(ctx *cli.Context, configured string) {
	if level, err := log.ParseLevel(configured); err == nil {
		log.SetLevel(level)
	} else {
		logger.Warningf("ignoring log level: %v", err)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
