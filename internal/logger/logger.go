// Package logger holds the process-wide structured logger.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var L *logrus.Logger

// Init configures the shared logger. Level falls back to info when the
// value is unparseable.
func Init(level string) {
	L = logrus.New()
	L.SetFormatter(&logrus.JSONFormatter{})
	L.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	L.SetLevel(lvl)
}

func init() {
	// A usable default so packages can log before main configures us.
	Init("info")
}
