// Command babelsim is a reference driver for the babel routing core: it
// loads a YAML topology, wires up one Router per node over an in-memory
// transport, ticks the simulation, and reports the converged route tables.
// It plays the role the teacher's cmd package played for kBGP, rebuilt
// around cobra subcommands and structured logging instead of a bare main().
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("babelsim exited with an error")
		os.Exit(1)
	}
}
