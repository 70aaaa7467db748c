package logger

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var l = stdr.New(log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile))

func init() {
	stdr.SetVerbosity(envInt(envLogLevel, 0))
}

// ReplaceLogger swaps the backing logger. Loggers handed out before the
// call keep the old backend.
func ReplaceLogger(logger logr.Logger) {
	l = logger
}

// GetLogger returns a named logger.
func GetLogger(name string) logr.Logger {
	return l.WithName(name)
}
